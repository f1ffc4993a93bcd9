package resolve

import (
	"errors"
	"fmt"
)

// LookupError indicates the archive could not be located: the working
// directory could not be scanned, or the vendor page no longer exposes a
// recognizable download link. It is fatal to the run.
type LookupError struct {
	Reason string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup failed: %s", e.Reason)
}

// IsLookupError reports whether err represents a vendor-page lookup failure.
func IsLookupError(err error) bool {
	var le *LookupError
	return errors.As(err, &le)
}

// DownloadError indicates a network or IO failure while fetching the archive.
// It is fatal to the run; there is no automatic retry.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download of %s failed: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// IsDownloadError reports whether err represents an archive transfer failure.
func IsDownloadError(err error) bool {
	var de *DownloadError
	return errors.As(err, &de)
}
