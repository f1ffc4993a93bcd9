// Package runner executes the filtered installer sequence and aggregates
// per-installer outcomes.
package runner

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"

	"github.com/honeybugserial/vcpp-aio-auto/internal/console"
	"github.com/honeybugserial/vcpp-aio-auto/internal/installer"
	"github.com/honeybugserial/vcpp-aio-auto/internal/messages"
	"github.com/honeybugserial/vcpp-aio-auto/internal/prompt"
)

// rebootRequiredExitCode is ERROR_SUCCESS_REBOOT_REQUIRED; the install
// succeeded but Windows wants a restart. Treated as success.
const rebootRequiredExitCode = 3010

// execCommandContext is a seam for tests.
var execCommandContext = exec.CommandContext

// Options control how the sequence is executed.
type Options struct {
	// DryRun records every entry as "would install" and executes nothing.
	DryRun bool
	// AutoAccept skips the confirmation prompt before the first execution.
	AutoAccept bool
	// Confirmer asks for confirmation when AutoAccept is false.
	Confirmer prompt.Confirmer
}

// Run executes entries strictly in order. Failures of individual installers
// are recorded and never abort the remaining sequence; errors returned here
// only signal that confirmation could not be read. Entries in skipped were
// dropped by the architecture filter and are recorded as skipped.
func Run(ctx context.Context, entries []installer.Entry, skipped []installer.Entry, opts Options, out *console.Printer) (*Outcome, error) {
	outcome := &Outcome{DryRun: opts.DryRun}

	for _, entry := range skipped {
		out.Info(messages.InstallSkipX64Fmt, console.File(filepath.Base(entry.Path)))
		outcome.record(entry, StatusSkipped, 0)
	}

	if opts.DryRun {
		for _, entry := range entries {
			out.Info(messages.InstallRunningFmt, console.File(filepath.Base(entry.Path)), entry.Arch)
			out.Warn(messages.InstallDryRunSkip)
			outcome.record(entry, StatusWouldInstall, 0)
		}
		return outcome, nil
	}

	if !opts.AutoAccept {
		accepted, err := opts.Confirmer.Confirm(messages.InstallConfirmPrompt)
		if err != nil {
			return nil, err
		}
		if !accepted {
			outcome.Declined = true
			for _, entry := range entries {
				outcome.record(entry, StatusSkipped, 0)
			}
			out.Warn(messages.InstallDeclined)
			return outcome, nil
		}
	}

	for _, entry := range entries {
		name := filepath.Base(entry.Path)
		out.Info(messages.InstallRunningFmt, console.File(name), entry.Arch)

		exitCode := runInstaller(ctx, entry)
		if isSuccessExit(exitCode) {
			out.Success(messages.InstallSucceededFmt, name, exitCode)
			outcome.record(entry, StatusInstalled, exitCode)
		} else {
			out.Error(messages.InstallFailedFmt, name, exitCode)
			outcome.record(entry, StatusFailed, exitCode)
		}
		out.Blank()
	}
	return outcome, nil
}

// isSuccessExit reports whether an installer exit code counts as a successful
// install. 3010 is ERROR_SUCCESS_REBOOT_REQUIRED.
func isSuccessExit(code int) bool {
	return code == 0 || code == rebootRequiredExitCode
}

// runInstaller invokes one installer with its silent switches and returns the
// process exit code. Launch failures (missing file, permission) map to -1.
func runInstaller(ctx context.Context, entry installer.Entry) int {
	cmd := execCommandContext(ctx, entry.Path, entry.Switches...)
	cmd.Dir = filepath.Dir(entry.Path)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		return -1
	}
	return 0
}
