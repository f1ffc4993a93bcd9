package main

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdDeclaresExactlyTheContractFlags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"auto-accept", "dry-run", "preserve-download"} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, "missing flag --%s", name)
		assert.Equal(t, "bool", flag.Value.Type())
		assert.Equal(t, "false", flag.DefValue)
	}
	assert.False(t, cmd.HasSubCommands())
}

func TestRootCmdDryRunAgainstLocalArchive(t *testing.T) {
	dir := t.TempDir()
	writeArchive(t, filepath.Join(dir, "Visual-C-Runtimes-All-in-One-2024.07.10.zip"),
		"vcredist2005_x86.exe", "vcredist2022_x64.exe")

	origGetwd := getwd
	getwd = func() (string, error) { return dir, nil }
	t.Cleanup(func() { getwd = origGetwd })

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--dry-run"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Dry-run")
	assert.FileExists(t, filepath.Join(dir, "Visual-C-Runtimes-All-in-One-2024.07.10.zip"), "local archives are preserved")
	assert.NoDirExists(t, filepath.Join(dir, "vcredist-aio"))
}

func writeArchive(t *testing.T, path string, names ...string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for _, name := range names {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte("exe"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
}
