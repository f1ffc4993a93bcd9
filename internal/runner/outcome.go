package runner

import "github.com/honeybugserial/vcpp-aio-auto/internal/installer"

// Status is the terminal state of one installer within a run.
type Status string

const (
	// StatusInstalled means the installer exited successfully.
	StatusInstalled Status = "installed"
	// StatusFailed means the installer ran and reported an error exit.
	StatusFailed Status = "failed"
	// StatusSkipped means the installer was never attempted (arch filter or
	// declined confirmation).
	StatusSkipped Status = "skipped"
	// StatusWouldInstall is recorded for every entry of a dry run.
	StatusWouldInstall Status = "would install"
)

// Result is the outcome for a single installer entry.
type Result struct {
	Entry    installer.Entry
	Status   Status
	ExitCode int
}

// Outcome aggregates per-installer results for the run summary.
type Outcome struct {
	Results []Result
	// Declined is set when the user answered no at the confirmation prompt.
	// It is a voluntary stop, distinct from any failure.
	Declined bool
	// DryRun is set when no execution was ever attempted by request.
	DryRun bool
}

func (o *Outcome) record(entry installer.Entry, status Status, exitCode int) {
	o.Results = append(o.Results, Result{Entry: entry, Status: status, ExitCode: exitCode})
}

// Installed counts entries that installed successfully.
func (o *Outcome) Installed() int { return o.count(StatusInstalled) }

// Failed counts entries whose installer reported an error exit.
func (o *Outcome) Failed() int { return o.count(StatusFailed) }

// Skipped counts entries that were never attempted.
func (o *Outcome) Skipped() int { return o.count(StatusSkipped) }

// WouldInstall counts dry-run entries.
func (o *Outcome) WouldInstall() int { return o.count(StatusWouldInstall) }

func (o *Outcome) count(status Status) int {
	n := 0
	for _, r := range o.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}
