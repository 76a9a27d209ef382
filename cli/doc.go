// Package cli contains the command line interface for corefmt.
//
// # Usage
//
// The default command validates and formats a Core program, read from the
// named file or from stdin:
//
//	corefmt prog.core
//	corefmt --indent=2 - < prog.core
//	corefmt check prog.core
//	corefmt tokens json prog.core
//
// # Configuration
//
// Flag defaults are read from JSON and YAML files in the user configuration
// directory (config.json and config.yaml). YAML keys use underscores in place
// of hyphens, and nested mappings are flattened:
//
//	log:
//	  level: debug
//	indent: 4
//
// The init command writes the current flag values to config.yaml.
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (rfc3339, kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o corefmt .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: the pprof
//     directory in the user cache directory)
package cli
