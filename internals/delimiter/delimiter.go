// Package delimiter resolves the --delimiter option to the separator used between values
package delimiter

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Default is used when no delimiter was given
const Default = "\n"

var named = map[string]string{
	"Tab":  "\t",
	"CR":   "\r",
	"LF":   "\n",
	"CRLF": "\r\n",
}

// Resolve returns the separator for token. Named tokens (Tab, CR, LF, CRLF) are
// matched case-sensitive, anything else is used as is. An empty token means Default
func Resolve(token string) string {
	if token == "" {
		return Default
	}
	if sep, ok := named[token]; ok {
		return sep
	}
	return token
}

// Names returns the sorted list of named delimiters
func Names() []string {
	names := maps.Keys(named)
	slices.Sort(names)
	return names
}
