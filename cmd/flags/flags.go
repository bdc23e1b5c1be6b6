// Package flags holds the values bound to command line flags. They are read
// once, when the command runs, and turned into an executor.Source.
package flags

import "github.com/realm-go/realm/log"

var (
	Listen          []string
	ConfigFile      string
	DefaultEndpoint bool
	LogLevel        = log.INFO
	LogFile         string
	Output          string
	Version         bool
	TestConfig      bool
)
