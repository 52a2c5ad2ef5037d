package gitrelease

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Shorthands select, in order, the major, minor and patch candidates.
var Shorthands = [3]string{"1", "2", "3"}

// DefaultShorthand picks the minor bump when the operator just presses enter.
const DefaultShorthand = "2"

var literalVersion = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+$`)

// ResolveVersion turns operator input into the version string to release.
// Input is either one of the Shorthands or a literal "X.Y.Z"; empty input
// selects DefaultShorthand. A literal is returned exactly as typed.
func ResolveVersion(input string, candidates CandidateSet) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		input = DefaultShorthand
	}
	for i, s := range Shorthands {
		if input == s {
			return candidates[i].String(), nil
		}
	}
	if literalVersion.MatchString(input) {
		return input, nil
	}
	return "", errors.Wrapf(ErrInvalidVersion, "%q: enter 1, 2, 3 or a version like 1.2.3", input)
}

// ValidateSelection returns a validator for Prompter.Ask that accepts
// exactly the input ResolveVersion accepts.
func ValidateSelection(candidates CandidateSet) func(string) error {
	return func(input string) error {
		_, err := ResolveVersion(input, candidates)
		return err
	}
}
