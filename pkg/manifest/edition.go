package manifest

import "fmt"

// Edition is a Rust edition
type Edition uint8

const (
	// Edition2015 is the default when a package sets no edition
	Edition2015 Edition = iota
	Edition2018
	Edition2021
)

// String returns the edition as it is written in the manifest
func (e Edition) String() string {
	switch e {
	case Edition2015:
		return "2015"
	case Edition2018:
		return "2018"
	case Edition2021:
		return "2021"
	}
	panic(fmt.Sprintf("manifest: unknown edition %d", uint8(e)))
}

// ParseEdition parses the edition string from the manifest
func ParseEdition(s string) (Edition, error) {
	switch s {
	case "2015":
		return Edition2015, nil
	case "2018":
		return Edition2018, nil
	case "2021":
		return Edition2021, nil
	default:
		return 0, fmt.Errorf("unknown edition %q (expected 2015, 2018 or 2021)", s)
	}
}
