package gitrelease

import (
	"regexp"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// semverInText is the semver.org pattern without anchors, so it finds a
// version anywhere in a file.
var semverInText = regexp.MustCompile(`(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?`)

// BumpFile replaces the first semantic version in path with newVersion and
// returns the version it replaced. Versions directly preceded by "v" or "V"
// are skipped, they are usually tags or dependency references.
func BumpFile(fs afero.Fs, path, newVersion string) (string, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}

	var match []int
	for _, m := range semverInText.FindAllIndex(content, -1) {
		if m[0] > 0 && (content[m[0]-1] == 'v' || content[m[0]-1] == 'V') {
			continue
		}
		match = m
		break
	}
	if match == nil {
		return "", errors.Errorf("no semantic version found in %s", path)
	}
	old := string(content[match[0]:match[1]])

	updated := make([]byte, 0, len(content)-len(old)+len(newVersion))
	updated = append(updated, content[:match[0]]...)
	updated = append(updated, newVersion...)
	updated = append(updated, content[match[1]:]...)

	info, err := fs.Stat(path)
	if err != nil {
		return "", errors.Wrapf(err, "stat %s", path)
	}
	if err := afero.WriteFile(fs, path, updated, info.Mode().Perm()); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	return old, nil
}
