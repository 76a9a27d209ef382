// Package cmd provides the subcommands of corefmt: fmt, check, tokens, and
// init.
//
// Commands take their standard streams from the context (see [WithStreams])
// and return structured [*Error] values; the top-level driver logs them and
// sets the exit status.
package cmd

var (
	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file written by [Init].
	ConfigIdentifier = "config"
)
