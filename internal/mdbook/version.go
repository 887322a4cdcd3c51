package mdbook

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the mdBook release this protocol implementation tracks.
const Version = "0.4.40"

// VersionMatches reports whether the running mdBook satisfies the caret
// range of the version this preprocessor was built against. Callers treat
// a mismatch as a warning, not an error: the protocol has been stable
// across 0.4.x releases.
func VersionMatches(bookVersion string) (bool, error) {
	constraint, err := semver.NewConstraint("^" + Version)
	if err != nil {
		return false, fmt.Errorf("mdbook: parse version constraint: %w", err)
	}
	v, err := semver.NewVersion(bookVersion)
	if err != nil {
		return false, fmt.Errorf("mdbook: parse mdbook version %q: %w", bookVersion, err)
	}
	return constraint.Check(v), nil
}
