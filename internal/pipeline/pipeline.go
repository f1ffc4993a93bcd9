// Package pipeline drives one full run: resolve the archive, extract it,
// enumerate and filter installers, execute them, and clean up. Control flows
// strictly forward; any stage error is terminal.
package pipeline

import (
	"context"
	"path/filepath"

	"github.com/honeybugserial/vcpp-aio-auto/internal/console"
	"github.com/honeybugserial/vcpp-aio-auto/internal/messages"
	"github.com/honeybugserial/vcpp-aio-auto/internal/prompt"
	"github.com/honeybugserial/vcpp-aio-auto/internal/resolve"
	"github.com/honeybugserial/vcpp-aio-auto/internal/runner"
)

// Config is the resolved set of behavioral flags for a run. It is constructed
// once from the CLI invocation and read-only afterwards.
type Config struct {
	// AutoAccept skips the confirmation prompt before installing.
	AutoAccept bool
	// DryRun enumerates installers but never executes them.
	DryRun bool
	// PreserveDownload keeps a downloaded archive after the run.
	PreserveDownload bool
	// WorkDir is the directory archives live in and extraction happens under.
	WorkDir string
	// Confirmer asks for the pre-install confirmation. Required unless
	// AutoAccept or DryRun is set.
	Confirmer prompt.Confirmer
}

// Run executes the whole pipeline once and returns the aggregated outcome.
// Per-installer failures are recorded in the outcome and do not surface as an
// error; only Resolve/Extract/Enumerate failures (and an unreadable
// confirmation) do.
func Run(ctx context.Context, sys System, cfg Config, out *console.Printer) (*runner.Outcome, error) {
	archive, err := sys.Resolve(cfg.WorkDir, out)
	if err != nil {
		return nil, err
	}

	out.Rule(messages.StageExtracting)
	root, err := sys.Extract(archive.Path, cfg.WorkDir)
	if err != nil {
		return nil, err
	}
	out.Success(messages.ExtractDoneFmt, root)
	out.Blank()

	out.Rule(messages.StageInstalling)
	entries, err := sys.Enumerate(root)
	if err != nil {
		return nil, err
	}
	kept, dropped := sys.Filter(entries)

	outcome, err := sys.Execute(ctx, kept, dropped, runner.Options{
		DryRun:     cfg.DryRun,
		AutoAccept: cfg.AutoAccept,
		Confirmer:  cfg.Confirmer,
	}, out)
	if err != nil {
		return nil, err
	}

	cleanup(sys, cfg, archive, root, out)
	report(outcome, out)
	return outcome, nil
}

// cleanup removes the extraction tree and, for a non-preserved download, the
// archive itself. Failures here are warnings; the run's result stands.
func cleanup(sys System, cfg Config, archive resolve.ArchiveReference, root string, out *console.Printer) {
	out.Blank()
	out.Rule(messages.StageCleanup)

	name := filepath.Base(archive.Path)
	if archive.Origin == resolve.OriginRemote && !cfg.PreserveDownload {
		if err := sys.Remove(archive.Path); err != nil {
			out.Warn(messages.CleanupDeleteArchiveErrFmt, err)
		} else {
			out.Success(messages.CleanupDeletedArchiveFmt, console.File(name))
		}
	} else {
		out.Info(messages.CleanupPreservedFmt, console.File(name))
	}

	if err := sys.RemoveAll(root); err != nil {
		out.Warn(messages.CleanupDeleteTreeErrFmt, err)
	} else {
		out.Success(messages.CleanupDeletedTreeFmt, root)
	}
}

// report prints the final run summary.
func report(outcome *runner.Outcome, out *console.Printer) {
	out.Blank()
	out.Rule(messages.StageCompleted)
	if outcome.DryRun {
		out.Info(messages.InstallDrySummaryFmt, outcome.WouldInstall())
		return
	}
	out.Info(messages.InstallSummaryFmt, outcome.Installed(), outcome.Failed(), outcome.Skipped())
}
