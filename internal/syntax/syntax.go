// Package syntax derives syntax highlighting profiles from colour schemes.
//
// BuildDefault samples a scheme's ramps into a style for every category, and
// Merge layers the scheme's partial override on top. Build runs both. All
// three are pure functions and safe for concurrent use.
package syntax

import "fmt"

// Scheme is what Build consumes: named ramps plus an optional override.
type Scheme interface {
	RampSource
	SyntaxOverride() Override
}

// Build returns the final profile for a scheme.
func Build(scheme Scheme) (Profile, error) {
	if scheme == nil {
		return nil, fmt.Errorf("build syntax: no scheme")
	}
	defaults, err := BuildDefault(scheme)
	if err != nil {
		return nil, err
	}
	return Merge(defaults, scheme.SyntaxOverride())
}
