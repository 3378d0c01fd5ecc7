// Package testflags holds generated flag sets shared by the strongflags tests.
package testflags

//go:generate go run ../../cmd/strongflags generate -f flags.toml
