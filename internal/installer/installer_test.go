package installer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, name string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("exe"), 0o755))
}

func TestClassifySwitchTiers(t *testing.T) {
	cases := []struct {
		name     string
		year     string
		arch     Arch
		switches []string
	}{
		{"vcredist2005_x86.exe", "2005", ArchX86, []string{"/q"}},
		{"vcredist2008_x64.exe", "2008", ArchX64, []string{"/q"}},
		{"vcredist2010_x86.exe", "2010", ArchX86, []string{"/qb"}},
		{"vcredist2012_x64.exe", "2012", ArchX64, []string{"/qb"}},
		{"vcredist2013_x86.exe", "2013", ArchX86, []string{"/passive", "/norestart"}},
		{"VC_redist-2022-x64.exe", "2022", ArchX64, []string{"/passive", "/norestart"}},
		// Combined-era name without a year token takes the modern switch.
		{"vcredist_aio_x86.exe", "", ArchX86, []string{"/passive", "/norestart"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			year, arch, switches := classify(tc.name)
			assert.Equal(t, tc.year, year)
			assert.Equal(t, tc.arch, arch)
			assert.Equal(t, tc.switches, switches)
		})
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	year, arch, _ := classify("VCREDIST2019_X64.EXE")
	assert.Equal(t, "2019", year)
	assert.Equal(t, ArchX64, arch)
}

func TestEnumerateDiscoveryOrderAndFilter(t *testing.T) {
	root := t.TempDir()
	// Years deliberately out of order; discovery order is directory traversal
	// order, never sorted by year.
	touch(t, filepath.Join(root, "a"), "vcredist2022_x64.exe")
	touch(t, filepath.Join(root, "b"), "vcredist2005_x86.exe")
	touch(t, root, "readme.txt")

	entries, err := Enumerate(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2022", entries[0].Year)
	assert.Equal(t, "2005", entries[1].Year)
}

func TestEnumerateRunsAreDeterministic(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "vcredist2010_x86.exe")
	touch(t, root, "vcredist2013_x64.exe")

	first, err := Enumerate(root)
	require.NoError(t, err)
	second, err := Enumerate(root)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEnumerateEmptyTreeIsFatal(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "readme.txt")

	_, err := Enumerate(root)
	assert.ErrorIs(t, err, ErrNoInstallers)
}

func TestFilterDropsX64On32BitHost(t *testing.T) {
	entries := []Entry{
		{Path: "vcredist2005_x86.exe", Arch: ArchX86},
		{Path: "vcredist2022_x64.exe", Arch: ArchX64},
		{Path: "vcredist2013_x86.exe", Arch: ArchX86},
	}

	kept, dropped := FilterForHost(entries, false)
	require.Len(t, kept, 2)
	for _, entry := range kept {
		assert.Equal(t, ArchX86, entry.Arch)
	}
	require.Len(t, dropped, 1)
	assert.Equal(t, ArchX64, dropped[0].Arch)
}

func TestFilterKeepsEverythingOn64BitHost(t *testing.T) {
	entries := []Entry{
		{Path: "vcredist2005_x86.exe", Arch: ArchX86, Switches: []string{"/q"}},
		{Path: "vcredist2022_x64.exe", Arch: ArchX64, Switches: []string{"/passive", "/norestart"}},
	}

	kept, dropped := FilterForHost(entries, true)
	assert.Equal(t, entries, kept)
	assert.Empty(t, dropped)
}

func TestFilterUsesHostSeam(t *testing.T) {
	orig := is64BitHost
	is64BitHost = func() bool { return false }
	t.Cleanup(func() { is64BitHost = orig })

	kept, dropped := Filter([]Entry{{Path: "vcredist2019_x64.exe", Arch: ArchX64}})
	assert.Empty(t, kept)
	assert.Len(t, dropped, 1)
}
