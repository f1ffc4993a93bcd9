// Package hostinfo answers questions about the machine the run executes on.
package hostinfo

import (
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// kernelArchFunc is a seam for tests.
var kernelArchFunc = host.KernelArch

// Is64Bit reports whether the host operating system is 64-bit. A 64-bit OS may
// be running a 32-bit build of this binary, so the kernel architecture is
// consulted rather than runtime.GOARCH alone.
func Is64Bit() bool {
	arch, err := kernelArchFunc()
	if err != nil {
		// Fall back to the build architecture when the platform probe fails.
		return strings.Contains(runtime.GOARCH, "64")
	}
	arch = strings.ToLower(arch)
	return strings.Contains(arch, "64")
}
