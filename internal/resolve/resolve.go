// Package resolve produces the archive for a run: a matching local file when
// one exists, otherwise the latest package downloaded from the vendor.
package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/honeybugserial/vcpp-aio-auto/internal/console"
	"github.com/honeybugserial/vcpp-aio-auto/internal/messages"
)

// Origin distinguishes a pre-existing local archive from one downloaded this run.
type Origin string

const (
	// OriginLocal marks an archive that already existed in the working
	// directory. Local archives are never deleted by cleanup.
	OriginLocal Origin = "local"
	// OriginRemote marks an archive downloaded during this run.
	OriginRemote Origin = "remote"
)

// ArchiveReference identifies the single archive a run operates on.
type ArchiveReference struct {
	Origin Origin
	Path   string
	// URL is the resolved download URL for remote archives, empty for local.
	URL string
}

// localArchivePattern matches the vendor's all-in-one archive naming scheme.
const localArchivePattern = `^visual-c-runtimes-all-in-one-(.+)\.zip$`

var localArchiveRe = regexp.MustCompile(localArchivePattern)

// Archive returns the archive to use for this run. A local match pre-empts all
// network access; otherwise the latest package is resolved and downloaded.
// Every failure is a LookupError or a DownloadError.
func Archive(dir string, out *console.Printer) (ArchiveReference, error) {
	if local, ok, err := findLocalArchive(dir); err != nil {
		return ArchiveReference{}, &LookupError{Reason: fmt.Sprintf(messages.LookupScanDirFmt, dir, err)}
	} else if ok {
		out.Success(messages.ResolveLocalPackageFmt, console.File(filepath.Base(local)))
		return ArchiveReference{Origin: OriginLocal, Path: local}, nil
	}
	return downloadArchive(dir, out)
}

// findLocalArchive scans dir for all-in-one archives and picks the newest by
// embedded version string. The filename match is case-insensitive.
func findLocalArchive(dir string) (string, bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if localArchiveRe.MatchString(strings.ToLower(entry.Name())) {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return "", false, nil
	}
	sort.Slice(names, func(i, j int) bool { return archiveLess(names[i], names[j]) })
	return filepath.Join(dir, names[len(names)-1]), true, nil
}

// archiveLess orders archive names by their embedded version where both parse,
// falling back to lexicographic order for names like "-latest" or "-beta".
func archiveLess(a, b string) bool {
	va := archiveVersion(a)
	vb := archiveVersion(b)
	if va != nil && vb != nil {
		if va.Equal(vb) {
			return a < b
		}
		return va.LessThan(vb)
	}
	return a < b
}

func archiveVersion(name string) *goversion.Version {
	m := localArchiveRe.FindStringSubmatch(strings.ToLower(name))
	if m == nil {
		return nil
	}
	v, err := goversion.NewVersion(m[1])
	if err != nil {
		return nil
	}
	return v
}
