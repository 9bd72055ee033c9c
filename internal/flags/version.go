package flags

import "fmt"

// Version identifies a release of the VM for flag lifecycle gating.
type Version struct {
	Major int
	Minor int
}

// Current is the release the lifecycle tables are evaluated against.
var Current = Version{Major: 10}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// IsZero reports whether the version is unset.
func (v Version) IsZero() bool {
	return v.Major == 0 && v.Minor == 0
}

// AtMost reports whether v is the same release as o or an earlier one.
func (v Version) AtMost(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	return v.Minor <= o.Minor
}
