package installer

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/honeybugserial/vcpp-aio-auto/internal/hostinfo"
	"github.com/honeybugserial/vcpp-aio-auto/internal/messages"
)

// is64BitHost is a seam for tests.
var is64BitHost = hostinfo.Is64Bit

// ErrNoInstallers is returned when the extracted tree holds no installer
// executables at all.
var ErrNoInstallers = errors.New(messages.InstallNoInstallers)

// Enumerate walks the extraction root and returns every installer executable
// in discovery order. The walk is a pure read; running it twice over the same
// tree yields the same sequence.
func Enumerate(root string) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".exe") {
			return nil
		}
		year, arch, switches := classify(d.Name())
		entries = append(entries, Entry{Path: path, Year: year, Arch: arch, Switches: switches})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoInstallers
	}
	return entries, nil
}

// Filter drops entries the host cannot run: on a 32-bit OS every x64 entry is
// removed before execution, never attempted and never counted as a failure.
// It returns the surviving entries and the ones dropped, preserving order.
func Filter(entries []Entry) (kept []Entry, dropped []Entry) {
	return FilterForHost(entries, is64BitHost())
}

// FilterForHost is Filter with an explicit host bitness, for callers and tests
// that already know it.
func FilterForHost(entries []Entry, hostIs64 bool) (kept []Entry, dropped []Entry) {
	if hostIs64 {
		return entries, nil
	}
	for _, entry := range entries {
		if entry.Arch == ArchX64 {
			dropped = append(dropped, entry)
			continue
		}
		kept = append(kept, entry)
	}
	return kept, dropped
}
