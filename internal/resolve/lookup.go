package resolve

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/honeybugserial/vcpp-aio-auto/internal/messages"
)

// landingPageURL is the vendor page carrying the current download id. It is a
// variable so tests can point it at a local server.
var landingPageURL = "https://www.techpowerup.com/download/visual-c-redistributable-runtime-package-all-in-one/"

// usMirrors are the vendor's US mirror server ids. One is picked at random per
// download.
var usMirrors = []string{"16", "24", "26", "11", "12", "21", "19", "3", "20"}

var httpClient = &http.Client{Timeout: 30 * time.Second}

// noRedirectClient performs the mirror POST; the direct archive URL arrives in
// the redirect Location header, so redirects must not be followed.
var noRedirectClient = &http.Client{
	Timeout: 30 * time.Second,
	CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

var pickMirror = func() string {
	return usMirrors[rand.Intn(len(usMirrors))]
}

// downloadIDPatterns are the markups the vendor has used to embed the download
// id in the landing page; the first match wins.
var downloadIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`name="id"\s+value="(\d+)"`),
	regexp.MustCompile(`download_id\s*=\s*(\d+)`),
	regexp.MustCompile(`"id"\s*:\s*"(\d+)"`),
}

// lookupDownloadURL resolves the direct archive URL for the current package
// using the given mirror id.
func lookupDownloadURL(mirror string) (string, error) {
	id, err := fetchDownloadID()
	if err != nil {
		return "", err
	}

	form := url.Values{"id": {id}, "server_id": {mirror}}
	resp, err := noRedirectClient.PostForm(landingPageURL, form)
	if err != nil {
		return "", &DownloadError{URL: landingPageURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	location := resp.Header.Get("Location")
	if location == "" {
		return "", &LookupError{Reason: fmt.Sprintf(messages.LookupNoRedirectFmt, id)}
	}
	return location, nil
}

// fetchDownloadID scrapes the landing page for the current download id.
func fetchDownloadID() (string, error) {
	resp, err := httpClient.Get(landingPageURL)
	if err != nil {
		return "", &DownloadError{URL: landingPageURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", &DownloadError{URL: landingPageURL, Err: fmt.Errorf(messages.DownloadPageStatusFmt, resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &DownloadError{URL: landingPageURL, Err: err}
	}
	for _, pattern := range downloadIDPatterns {
		if m := pattern.FindSubmatch(body); m != nil {
			return string(m[1]), nil
		}
	}
	return "", &LookupError{Reason: messages.LookupNoDownloadID}
}
