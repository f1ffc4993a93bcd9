package messages

// Stage banners and status lines emitted while the pipeline runs.
const (
	StageDownloading = "Downloading Visual C++ Runtimes"
	StageExtracting  = "Extracting Package"
	StageInstalling  = "Installing VC++ Runtimes"
	StageCleanup     = "Cleanup"
	StageCompleted   = "COMPLETED"

	ResolveLocalPackageFmt = "Using local package: %s"
	ResolveUsingMirrorFmt  = "Using US mirror %s"
	ResolveNewPackageFmt   = "New package found: %s"
	ResolveDownloadDone    = "Download complete"

	ExtractDoneFmt = "Extracted to %s"

	InstallSkipX64Fmt      = "Skipping %s (x64 on 32-bit OS)"
	InstallRunningFmt      = "Installing %s (%s)..."
	InstallDryRunSkip      = "Dry-run: installer not executed"
	InstallSucceededFmt    = "%s installed (exit code %d)"
	InstallFailedFmt       = "%s failed (exit code %d)"
	InstallConfirmPrompt   = "Proceed with installation?"
	InstallDeclined        = "Installation declined; nothing was executed"
	InstallNoInstallers    = "no redistributable installers found"
	InstallSummaryFmt      = "Summary: %d installed, %d failed, %d skipped"
	InstallDrySummaryFmt   = "Dry-run: %d installers would be executed"
	InstallPromptReadError = "read confirmation: %w"

	CleanupDeletedArchiveFmt   = "Deleted archive: %s"
	CleanupDeleteArchiveErrFmt = "Could not delete archive (%v)"
	CleanupPreservedFmt        = "Preserving archive: %s"
	CleanupDeletedTreeFmt      = "Deleted extracted directory: %s"
	CleanupDeleteTreeErrFmt    = "Failed to delete extracted directory (%v)"

	RunLogWrittenFmt = "Log written to %s"
)
