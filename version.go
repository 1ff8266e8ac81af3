package turtlebench

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version is the release version of turtlebench.
var Version = strings.TrimSpace(rawVersion)
