package customization

import (
	"fmt"
	"strings"

	teeerrors "github.com/alexisbeaulieu97/teecraft/pkg/errors"
)

// Build is a coarse body-type category used to select garment fit.
type Build string

const (
	BuildLean     Build = "lean"
	BuildRegular  Build = "regular"
	BuildAthletic Build = "athletic"
	BuildBig      Build = "big"
)

var supportedBuilds = []Build{BuildLean, BuildRegular, BuildAthletic, BuildBig}

// buildAliases holds legacy values still accepted on input.
var buildAliases = map[string]Build{
	"reg": BuildRegular,
}

// Builds returns the selectable builds in display order.
func Builds() []Build {
	return append([]Build(nil), supportedBuilds...)
}

// ParseBuild converts user or config input into a Build.
func ParseBuild(raw string) (Build, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	for _, b := range supportedBuilds {
		if string(b) == value {
			return b, nil
		}
	}
	if alias, ok := buildAliases[value]; ok {
		return alias, nil
	}
	return "", teeerrors.NewValidationError("build", fmt.Sprintf("must be one of %v, got %q", supportedBuilds, raw), nil)
}

// Valid reports whether b is one of the selectable builds.
func (b Build) Valid() bool {
	for _, candidate := range supportedBuilds {
		if candidate == b {
			return true
		}
	}
	return false
}

// Label returns the capitalised display label.
func (b Build) Label() string {
	if b == "" {
		return ""
	}
	s := string(b)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Step returns the build delta positions away, wrapping around the option list.
// An invalid receiver starts from the first option.
func (b Build) Step(delta int) Build {
	idx := 0
	for i, candidate := range supportedBuilds {
		if candidate == b {
			idx = i
			break
		}
	}
	n := len(supportedBuilds)
	idx = ((idx+delta)%n + n) % n
	return supportedBuilds[idx]
}
