package resolve

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybugserial/vcpp-aio-auto/internal/console"
)

func withPinnedMirror(t *testing.T, mirror string) {
	t.Helper()
	orig := pickMirror
	pickMirror = func() string { return mirror }
	t.Cleanup(func() { pickMirror = orig })
}

func TestDownloadArchiveWritesFileAndReportsRemote(t *testing.T) {
	payload := strings.Repeat("redist-bytes ", 1024)

	mirror := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, payload)
	}))
	t.Cleanup(mirror.Close)

	withLandingPage(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Header().Set("Location", mirror.URL+"/Visual-C-Runtimes-All-in-One-2024.07.10.zip")
			w.WriteHeader(http.StatusFound)
			return
		}
		_, _ = fmt.Fprint(w, `name="id" value="9"`)
	}))
	withPinnedMirror(t, "16")

	dir := t.TempDir()
	var buf bytes.Buffer
	ref, err := Archive(dir, console.New(&buf))
	require.NoError(t, err)

	assert.Equal(t, OriginRemote, ref.Origin)
	assert.Equal(t, filepath.Join(dir, "Visual-C-Runtimes-All-in-One-2024.07.10.zip"), ref.Path)
	data, err := os.ReadFile(ref.Path)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))
}

func TestFetchToFileBadStatusIsDownloadError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	target := filepath.Join(dir, "pkg.zip")
	err := fetchToFile(server.URL, target, console.New(&bytes.Buffer{}))
	require.Error(t, err)
	assert.True(t, IsDownloadError(err))
	assert.NoFileExists(t, target)
}

func TestFetchToFileTransportFailureIsDownloadError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close() // refuse every connection

	err := fetchToFile(server.URL, filepath.Join(t.TempDir(), "pkg.zip"), console.New(&bytes.Buffer{}))
	require.Error(t, err)
	assert.True(t, IsDownloadError(err))
}

func TestDownloadClientHasNoTotalTimeout(t *testing.T) {
	// http.Client.Timeout caps the whole body read; a slow transfer of a
	// large archive must be allowed to run to completion. Only connection
	// setup is bounded.
	assert.Zero(t, downloadClient.Timeout)
	transport, ok := downloadClient.Transport.(*http.Transport)
	require.True(t, ok)
	assert.NotZero(t, transport.TLSHandshakeTimeout)
}

func TestProgressMeterEmitsOnPercentAdvance(t *testing.T) {
	var buf bytes.Buffer
	meter := &progressMeter{total: 200, out: &buf}

	_, err := meter.Write(make([]byte, 100))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "50%")

	before := buf.Len()
	_, err = meter.Write(nil)
	require.NoError(t, err)
	assert.Equal(t, before, buf.Len(), "no output without percent advance")
}

func TestByteCount(t *testing.T) {
	assert.Equal(t, "512 B", byteCount(512))
	assert.Equal(t, "1.0 KiB", byteCount(1024))
	assert.Equal(t, "1.5 MiB", byteCount(3<<20/2))
}
