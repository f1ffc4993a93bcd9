// Package extract unpacks the all-in-one archive into the run's working tree.
package extract

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/honeybugserial/vcpp-aio-auto/internal/messages"
)

// Dir is the fixed extraction subdirectory inside the working directory.
const Dir = "vcredist-aio"

// ExtractionError indicates the archive could not be unpacked. It is fatal to
// the run; there is no partial-extraction recovery.
type ExtractionError struct {
	Archive string
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction of %s failed: %v", e.Archive, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// IsExtractionError reports whether err represents an archive extraction failure.
func IsExtractionError(err error) bool {
	var ee *ExtractionError
	return errors.As(err, &ee)
}

// Archive unpacks archivePath into the fixed subdirectory of workDir and
// returns that directory. Leftovers from a prior failed run are removed first.
func Archive(archivePath string, workDir string) (string, error) {
	dest := filepath.Join(workDir, Dir)
	if err := os.RemoveAll(dest); err != nil {
		return "", &ExtractionError{Archive: archivePath, Err: fmt.Errorf(messages.ExtractResetDirFmt, dest, err)}
	}

	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", &ExtractionError{Archive: archivePath, Err: fmt.Errorf(messages.ExtractOpenErrFmt, archivePath, err)}
	}
	defer func() { _ = reader.Close() }()

	for _, file := range reader.File {
		if err := writeEntry(file, dest); err != nil {
			return "", &ExtractionError{Archive: archivePath, Err: err}
		}
	}
	return dest, nil
}

// writeEntry materializes one archive entry under dest, rejecting paths that
// would escape it.
func writeEntry(file *zip.File, dest string) error {
	target, err := safeJoin(dest, file.Name)
	if err != nil {
		return err
	}

	if file.FileInfo().IsDir() {
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf(messages.ExtractEntryErrFmt, file.Name, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf(messages.ExtractEntryErrFmt, file.Name, err)
	}
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf(messages.ExtractEntryErrFmt, file.Name, err)
	}
	defer func() { _ = src.Close() }()

	mode := file.Mode()
	if mode.Perm() == 0 {
		// Archives written without unix attributes report no permissions;
		// the payload is installer executables, so default accordingly.
		mode = 0o755
	}
	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf(messages.ExtractEntryErrFmt, file.Name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf(messages.ExtractEntryErrFmt, file.Name, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf(messages.ExtractEntryErrFmt, file.Name, err)
	}
	return nil
}

// safeJoin joins name under dest and rejects traversal outside dest.
func safeJoin(dest string, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	if target != dest && !strings.HasPrefix(target, dest+string(os.PathSeparator)) {
		return "", fmt.Errorf(messages.ExtractUnsafePathFmt, name)
	}
	return target, nil
}
