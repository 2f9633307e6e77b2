// ewsctl - Command-line client for Exchange Web Services
package main

import (
	"github.com/getmockd/ews/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.Execute()
}
