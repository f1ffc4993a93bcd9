package messages

// Error text for the typed pipeline errors.
const (
	LookupNoDownloadID  = "unable to locate the current download id on the vendor page"
	LookupNoRedirectFmt = "vendor did not return a redirect for download id %s"
	LookupScanDirFmt    = "scan working directory %s: %v"

	DownloadBadStatusFmt  = "fetch archive: unexpected status %s"
	DownloadPageStatusFmt = "fetch vendor page: unexpected status %s"
	DownloadCreateFileFmt = "create archive file %s: %w"

	ExtractOpenErrFmt    = "open archive %s: %w"
	ExtractResetDirFmt   = "reset extraction directory %s: %w"
	ExtractEntryErrFmt   = "extract %s: %w"
	ExtractUnsafePathFmt = "archive entry %q escapes the extraction directory"
)
