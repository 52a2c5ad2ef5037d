package gitrelease

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	modsemver "golang.org/x/mod/semver"
)

// Version is a major.minor.patch triple. Components are never negative.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Zero is used as the current version when the repository has no tags yet.
var Zero = Version{}

// String renders the version without a "v" prefix, e.g. "1.4.1".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Tag renders the version as a git tag name, e.g. "v1.4.1".
func (v Version) Tag() string {
	return TagName(v.String())
}

// TagName prefixes a version string with "v".
func TagName(version string) string {
	return "v" + version
}

// CandidateSet holds the three suggested next versions: major bump, minor bump
// and patch bump, always in that order.
type CandidateSet [3]Version

// Major returns the major bump candidate.
func (c CandidateSet) Major() Version { return c[0] }

// Minor returns the minor bump candidate.
func (c CandidateSet) Minor() Version { return c[1] }

// Patch returns the patch bump candidate.
func (c CandidateSet) Patch() Version { return c[2] }

// ParseDescribe extracts the version triple from the output of
// `git describe --tags`, e.g. "v1.4.1-1-gb92151c" yields 1.4.1.
// A leading "v" and anything from the first "-" on are dropped.
// Missing minor or patch components default to zero, and leading zeros are
// ignored, so "v2024.01.5" yields 2024.1.5.
func ParseDescribe(raw string) (Version, error) {
	core := strings.TrimSpace(raw)
	core = strings.TrimPrefix(strings.TrimPrefix(core, "v"), "V")
	if i := strings.Index(core, "-"); i >= 0 {
		core = core[:i]
	}
	if core == "" {
		return Zero, errors.Wrapf(ErrMalformedTag, "tag %q has no version", raw)
	}

	parts := strings.Split(core, ".")
	if len(parts) > 3 {
		return Zero, errors.Wrapf(ErrMalformedTag, "tag %q has more than three version components", raw)
	}
	for i, part := range parts {
		if part == "" || strings.Trim(part, "0123456789") != "" {
			return Zero, errors.Wrapf(ErrMalformedTag, "tag %q: component %q is not a number", raw, part)
		}
		if parts[i] = strings.TrimLeft(part, "0"); parts[i] == "" {
			parts[i] = "0"
		}
	}

	sv, err := semver.NewVersion(strings.Join(parts, "."))
	if err != nil {
		return Zero, errors.Wrapf(ErrMalformedTag, "tag %q: %v", raw, err)
	}
	return Version{
		Major: int(sv.Major()),
		Minor: int(sv.Minor()),
		Patch: int(sv.Patch()),
	}, nil
}

// Suggest returns the next major, minor and patch versions for v.
func Suggest(v Version) CandidateSet {
	return CandidateSet{
		{Major: v.Major + 1},
		{Major: v.Major, Minor: v.Minor + 1},
		{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1},
	}
}

// isNewer reports whether next sorts after current. Both are plain
// "X.Y.Z" strings and may carry leading zeros; an unreadable next sorts as
// older.
func isNewer(next, current string) bool {
	n, err := ParseDescribe(next)
	if err != nil {
		return false
	}
	c, err := ParseDescribe(current)
	if err != nil {
		return true
	}
	return modsemver.Compare(n.Tag(), c.Tag()) > 0
}
