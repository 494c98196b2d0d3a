// Package semver implements the version ordering used by plugin release
// metadata. Versions are compared by the numeric core before the first "-";
// anything that does not parse as dot-separated digits sorts after every
// well-formed version, with the raw string as the tie-break in both classes.
package semver

import (
	"sort"
	"strconv"
	"strings"
)

// Key is a derived sort key for a version string.
type Key struct {
	Malformed bool
	Core      []int
	Raw       string
}

// ParseCore returns the numeric segments of the part before the first "-".
// ok is false when any segment is not purely ASCII digits; this is an
// expected branch (it affects sort order), not an error.
func ParseCore(version string) ([]int, bool) {
	core, _, _ := strings.Cut(version, "-")
	parts := strings.Split(core, ".")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		if !isDigits(part) {
			return nil, false
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, false
		}
		values = append(values, n)
	}
	return values, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// SortKey derives the Key for a version string.
func SortKey(version string) Key {
	core, ok := ParseCore(version)
	if !ok {
		return Key{Malformed: true, Raw: version}
	}
	return Key{Core: core, Raw: version}
}

// Compare orders two keys: well-formed before malformed, then numeric core
// segment by segment (a shorter core that is a prefix of the other sorts
// first), then the raw string. Returns -1, 0, or 1.
func (k Key) Compare(other Key) int {
	if k.Malformed != other.Malformed {
		if k.Malformed {
			return 1
		}
		return -1
	}
	if !k.Malformed {
		for i := 0; i < len(k.Core) && i < len(other.Core); i++ {
			if k.Core[i] != other.Core[i] {
				if k.Core[i] < other.Core[i] {
					return -1
				}
				return 1
			}
		}
		if len(k.Core) != len(other.Core) {
			if len(k.Core) < len(other.Core) {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(k.Raw, other.Raw)
}

// Less reports whether k sorts before other.
func (k Key) Less(other Key) bool {
	return k.Compare(other) < 0
}

// Compare orders two version strings by their sort keys.
func Compare(a, b string) int {
	return SortKey(a).Compare(SortKey(b))
}

// SortStrings sorts version strings ascending by sort key, in place.
func SortStrings(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		return Compare(versions[i], versions[j]) < 0
	})
}

// Latest returns the version with the maximum sort key, or "" and false
// when the slice is empty.
func Latest(versions []string) (string, bool) {
	if len(versions) == 0 {
		return "", false
	}
	latest := versions[0]
	for _, v := range versions[1:] {
		if Compare(latest, v) < 0 {
			latest = v
		}
	}
	return latest, true
}
