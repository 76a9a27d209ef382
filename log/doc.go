// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are configured at creation time with functional options and are
// immutable afterward. The package-level functions log through a default
// logger that writes to standard error, leaving standard output free for
// formatted programs.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("formatted", slog.String("source", path))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The default logger is reconfigured in place with [Config]:
//
//	log.Config(log.WithFormat(log.FormatJSON))
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Trace is used by the grammar engine to
// report every accepted token.
//
// # Output Formats
//
// [FormatText] (default) and [FormatJSON]. Text output can be colorized
// with [WithPretty]; colors are dropped when the writer is not a terminal.
package log
