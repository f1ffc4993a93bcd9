// Package installer discovers redistributable installers inside the extracted
// package and decides which of them apply to this host.
package installer

// Arch is the target architecture encoded in an installer's filename.
type Arch string

const (
	ArchX86 Arch = "x86"
	ArchX64 Arch = "x64"
)

// Entry is one discovered installer executable. Entries are immutable after
// enumeration.
type Entry struct {
	// Path is the absolute path of the installer executable.
	Path string
	// Year is the redistributable product year token found in the filename,
	// empty when the name carries no known year.
	Year string
	// Arch is x64 when the filename carries an x64 token, x86 otherwise.
	Arch Arch
	// Switches are the silent-install arguments for this entry's year tier.
	Switches []string
}
