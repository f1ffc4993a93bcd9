package resolve

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/honeybugserial/vcpp-aio-auto/internal/console"
	"github.com/honeybugserial/vcpp-aio-auto/internal/messages"
)

// downloadClient streams the archive itself. It carries no total request
// timeout: a large archive on a slow link legitimately takes as long as it
// takes, so only connection setup and the TLS handshake are bounded.
var downloadClient = &http.Client{
	Transport: &http.Transport{
		DialContext:         (&net.Dialer{Timeout: 30 * time.Second}).DialContext,
		TLSHandshakeTimeout: 30 * time.Second,
	},
}

// downloadArchive resolves the current package URL and streams it into dir.
func downloadArchive(dir string, out *console.Printer) (ArchiveReference, error) {
	out.Blank()
	out.Rule(messages.StageDownloading)

	mirror := pickMirror()
	out.Info(messages.ResolveUsingMirrorFmt, mirror)

	downloadURL, err := lookupDownloadURL(mirror)
	if err != nil {
		return ArchiveReference{}, err
	}

	filename := filepath.Base(downloadURL)
	path := filepath.Join(dir, filename)
	out.Success(messages.ResolveNewPackageFmt, console.File(filename))

	if err := fetchToFile(downloadURL, path, out); err != nil {
		return ArchiveReference{}, err
	}

	out.Success(messages.ResolveDownloadDone)
	out.Blank()
	return ArchiveReference{Origin: OriginRemote, Path: path, URL: downloadURL}, nil
}

// fetchToFile streams url into path, reporting progress against the response
// Content-Length when the server provides one.
func fetchToFile(url string, path string, out *console.Printer) error {
	resp, err := downloadClient.Get(url)
	if err != nil {
		return &DownloadError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return &DownloadError{URL: url, Err: fmt.Errorf(messages.DownloadBadStatusFmt, resp.Status)}
	}

	f, err := os.Create(path)
	if err != nil {
		return &DownloadError{URL: url, Err: fmt.Errorf(messages.DownloadCreateFileFmt, path, err)}
	}

	var src io.Reader = resp.Body
	if resp.ContentLength > 0 {
		src = io.TeeReader(resp.Body, &progressMeter{total: resp.ContentLength, out: out.Writer()})
	}

	_, copyErr := io.Copy(f, src)
	closeErr := f.Close()
	if resp.ContentLength > 0 {
		_, _ = fmt.Fprintf(out.Writer(), "\r\033[2K")
	}
	if copyErr != nil {
		_ = os.Remove(path)
		return &DownloadError{URL: url, Err: copyErr}
	}
	if closeErr != nil {
		_ = os.Remove(path)
		return &DownloadError{URL: url, Err: closeErr}
	}
	return nil
}

// progressMeter rewrites a single console line with the transfer percentage.
// It only emits when the integer percentage advances to keep output quiet on
// fast links.
type progressMeter struct {
	total   int64
	done    int64
	percent int
	out     io.Writer
}

func (m *progressMeter) Write(p []byte) (int, error) {
	m.done += int64(len(p))
	percent := int(m.done * 100 / m.total)
	if percent > 100 {
		percent = 100
	}
	if percent != m.percent {
		m.percent = percent
		_, _ = fmt.Fprintf(m.out, "\r  downloading... %3d%% (%s of %s)", percent, byteCount(m.done), byteCount(m.total))
	}
	return len(p), nil
}

// byteCount renders a byte total in a short human-readable unit.
func byteCount(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
