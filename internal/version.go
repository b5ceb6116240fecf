package internal

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	version      = "0.1.0"
	revision     = "$Format:%h$"
	revisionDate = "$Format:%as$"
)

// Version returns the release string baked in at build time.
func Version() string {
	if strings.HasPrefix(revision, "$Format") {
		return version
	}
	return fmt.Sprintf("%s+%s.%s", version, revisionDate, revision)
}

// Semver is a parsed semantic version. The build metadata is ignored for
// comparison purposes.
type Semver struct {
	major, minor, patch int
	preRelease          string
}

// Parse parses a semver-ish string ("1", "1.2", "1.2.3-alpha+build").
// It returns nil when the string is not a valid version.
func Parse(v string) *Semver {
	if i := strings.IndexByte(v, '+'); i >= 0 {
		v = v[:i]
	}
	var pre string
	if i := strings.IndexByte(v, '-'); i >= 0 {
		v, pre = v[:i], v[i+1:]
	}
	parts := strings.Split(v, ".")
	if len(parts) == 0 || len(parts) > 3 {
		return nil
	}
	nums := [3]int{}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil
		}
		nums[i] = n
	}
	return &Semver{major: nums[0], minor: nums[1], patch: nums[2], preRelease: pre}
}

// CompareVersions returns -1, 0 or 1 when a is older than, equal to or newer
// than b.
func CompareVersions(a, b *Semver) (int, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("cannot compare nil versions")
	}
	if c := cmpInt(a.major, b.major); c != 0 {
		return c, nil
	}
	if c := cmpInt(a.minor, b.minor); c != 0 {
		return c, nil
	}
	if c := cmpInt(a.patch, b.patch); c != 0 {
		return c, nil
	}
	// a release outranks any of its pre-releases
	switch {
	case a.preRelease == b.preRelease:
		return 0, nil
	case a.preRelease == "":
		return 1, nil
	case b.preRelease == "":
		return -1, nil
	case a.preRelease < b.preRelease:
		return -1, nil
	default:
		return 1, nil
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
