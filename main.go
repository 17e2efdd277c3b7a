package main

import (
	"github.com/minepkg/cargo-get/cmd"
)

// set by goreleaser
var (
	version string
	commit  string
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Execute()
}
