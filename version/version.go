package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var VERSION string

// String returns the release version without surrounding whitespace.
func String() string {
	return strings.TrimSpace(VERSION)
}
