// Package testutil provides helpers for tests that fake installer executables.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteInstallerStub writes an executable shell stub named like a vendor
// installer that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteInstallerStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteInstallerStubWithExit(t, dir, name, 0)
}

// WriteInstallerStubWithExit writes an executable shell stub that exits with
// the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteInstallerStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// WriteInstallerStubExpectArg writes an executable shell stub that succeeds
// only when expectedArg is present among its arguments.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteInstallerStubExpectArg(t *testing.T, dir string, name string, expectedArg string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nfor arg in \"$@\"; do\n  if [ \"$arg\" = \"%s\" ]; then exit 0; fi\ndone\nexit 1\n", expectedArg))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}
