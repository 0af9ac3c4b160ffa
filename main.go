package main

import (
	"github.com/sintem/gmail-mcp/cmd"
)

// version is set by the build pipeline.
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
