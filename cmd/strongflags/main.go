// Command strongflags generates strongly typed flag sets.
//
// Typical use is through go:generate:
//
//	//go:generate go run github.com/hupe1980/strongflags/cmd/strongflags generate -t Perm -s uint8 Read Write Exec
//	//go:generate go run github.com/hupe1980/strongflags/cmd/strongflags generate -f flags.toml
//
// Run "strongflags help" for all commands.
package main

import (
	"context"
	"os"
)

// These variables are set via the -ldflags option in go build
var (
	version = "unknown"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
