package messages

// CLI messages for the root command and its flags.
const (
	// RootUse is the CLI command name.
	RootUse = "vcaio"
	// RootShort is the short description for the root command.
	RootShort = "Download and silently install all Visual C++ Redistributable runtimes"
	RootLong  = "vcaio locates or downloads the Visual C++ Redistributable All-in-One package,\nextracts it, and runs every architecture-appropriate installer with its silent switch."

	RootFlagAutoAccept       = "Run non-interactively (do not prompt for confirmation)"
	RootFlagDryRun           = "Extract and enumerate installers but never execute them"
	RootFlagPreserveDownload = "Keep the downloaded archive after the run (local archives are always kept)"

	// VersionTemplate renders --version output.
	VersionTemplate = "{{.Version}}\n"
)
