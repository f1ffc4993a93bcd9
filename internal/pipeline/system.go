package pipeline

import (
	"context"
	"os"

	"github.com/honeybugserial/vcpp-aio-auto/internal/console"
	"github.com/honeybugserial/vcpp-aio-auto/internal/extract"
	"github.com/honeybugserial/vcpp-aio-auto/internal/installer"
	"github.com/honeybugserial/vcpp-aio-auto/internal/resolve"
	"github.com/honeybugserial/vcpp-aio-auto/internal/runner"
)

// System abstracts the pipeline stages so tests can substitute any of them
// without shared global state. Each stage package keeps its own seams for its
// unit tests; this interface exists for pipeline-level tests.
type System interface {
	Resolve(dir string, out *console.Printer) (resolve.ArchiveReference, error)
	Extract(archivePath string, workDir string) (string, error)
	Enumerate(root string) ([]installer.Entry, error)
	Filter(entries []installer.Entry) (kept []installer.Entry, dropped []installer.Entry)
	Execute(ctx context.Context, entries []installer.Entry, skipped []installer.Entry, opts runner.Options, out *console.Printer) (*runner.Outcome, error)
	Remove(path string) error
	RemoveAll(path string) error
}

// RealSystem implements System with the stage packages and the OS.
type RealSystem struct{}

// Resolve returns the archive for the run, downloading when needed.
func (RealSystem) Resolve(dir string, out *console.Printer) (resolve.ArchiveReference, error) {
	return resolve.Archive(dir, out)
}

// Extract unpacks the archive into the fixed extraction directory.
func (RealSystem) Extract(archivePath string, workDir string) (string, error) {
	return extract.Archive(archivePath, workDir)
}

// Enumerate lists installer executables under root in discovery order.
func (RealSystem) Enumerate(root string) ([]installer.Entry, error) {
	return installer.Enumerate(root)
}

// Filter drops architecture-inappropriate entries for this host.
func (RealSystem) Filter(entries []installer.Entry) ([]installer.Entry, []installer.Entry) {
	return installer.Filter(entries)
}

// Execute runs the filtered sequence.
func (RealSystem) Execute(ctx context.Context, entries []installer.Entry, skipped []installer.Entry, opts runner.Options, out *console.Printer) (*runner.Outcome, error) {
	return runner.Run(ctx, entries, skipped, opts, out)
}

// Remove deletes a single file.
func (RealSystem) Remove(path string) error {
	return os.Remove(path)
}

// RemoveAll deletes a directory tree.
func (RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
