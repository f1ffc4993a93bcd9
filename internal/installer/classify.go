package installer

import "strings"

// knownYears are the product year tokens the vendor package uses, matched in
// this order against the lowercased filename.
var knownYears = []string{"2005", "2008", "2010", "2012", "2013", "2015", "2017", "2019", "2022"}

// Silent-install switch tiers. Installers whose name carries no recognized
// year (the combined 2015-2022 era names among them) take the modern switch.
var (
	switchesOldest = []string{"/q"}
	switchesMiddle = []string{"/qb"}
	switchesModern = []string{"/passive", "/norestart"}
)

// classify derives year, architecture, and install switches from an installer
// filename.
func classify(name string) (year string, arch Arch, switches []string) {
	lower := strings.ToLower(name)
	for _, y := range knownYears {
		if strings.Contains(lower, y) {
			year = y
			break
		}
	}
	arch = ArchX86
	if strings.Contains(lower, "x64") {
		arch = ArchX64
	}
	return year, arch, switchesForYear(year)
}

// switchesForYear maps a product year to its silent-install switch tier.
func switchesForYear(year string) []string {
	switch year {
	case "2005", "2008":
		return switchesOldest
	case "2010", "2012":
		return switchesMiddle
	default:
		return switchesModern
	}
}
