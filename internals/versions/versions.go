// Package versions splits a semver version into its parts and renders them
package versions

import (
	"fmt"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// Part selects what to print of a version
type Part uint8

const (
	// PartDefault prints major.minor.patch without prefix or suffixes
	PartDefault Part = iota
	// PartFull prints the version exactly as written
	PartFull
	// PartPretty prints v<major>.<minor>.<patch>
	PartPretty
	PartMajor
	PartMinor
	PartPatch
	PartBuild
	PartPre
)

var partNames = map[Part]string{
	PartDefault: "default",
	PartFull:    "full",
	PartPretty:  "pretty",
	PartMajor:   "major",
	PartMinor:   "minor",
	PartPatch:   "patch",
	PartBuild:   "build",
	PartPre:     "pre",
}

func (p Part) String() string {
	if name, ok := partNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Part(%d)", uint8(p))
}

// InvalidSemverError is returned for version strings that are not valid semver
type InvalidSemverError struct {
	Version string
	Err     error
}

func (e *InvalidSemverError) Error() string {
	return fmt.Sprintf("invalid semver version %q: %s", e.Version, e.Err)
}

func (e *InvalidSemverError) Unwrap() error {
	return e.Err
}

// Components are the parts of a parsed version
type Components struct {
	Major uint64
	Minor uint64
	Patch uint64
	// Pre is the pre-release part, empty if there is none
	Pre string
	// Build is the build metadata, empty if there is none
	Build string

	original string
}

// Decompose parses version with strict semver rules (major.minor.patch[-pre][+build])
func Decompose(version string) (*Components, error) {
	v, err := semver.StrictNewVersion(version)
	if err != nil {
		return nil, &InvalidSemverError{Version: version, Err: err}
	}

	return &Components{
		Major:    v.Major(),
		Minor:    v.Minor(),
		Patch:    v.Patch(),
		Pre:      v.Prerelease(),
		Build:    v.Metadata(),
		original: version,
	}, nil
}

// Core returns major.minor.patch
func (c *Components) Core() string {
	return fmt.Sprintf("%d.%d.%d", c.Major, c.Minor, c.Patch)
}

// Pretty returns the version like v1.2.3, omitting pre-release and build
func (c *Components) Pretty() string {
	return "v" + c.Core()
}

// Full returns the version string as it was parsed
func (c *Components) Full() string {
	return c.original
}

// Render returns the requested part of the version
func (c *Components) Render(p Part) string {
	switch p {
	case PartFull:
		return c.Full()
	case PartPretty:
		return c.Pretty()
	case PartMajor:
		return strconv.FormatUint(c.Major, 10)
	case PartMinor:
		return strconv.FormatUint(c.Minor, 10)
	case PartPatch:
		return strconv.FormatUint(c.Patch, 10)
	case PartBuild:
		return c.Build
	case PartPre:
		return c.Pre
	default:
		return c.Core()
	}
}

// Render parses version and returns the requested part
func Render(version string, p Part) (string, error) {
	c, err := Decompose(version)
	if err != nil {
		return "", err
	}
	return c.Render(p), nil
}
