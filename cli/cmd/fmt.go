package cmd

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"

	"github.com/ardnew/corefmt/lang"
	"github.com/ardnew/corefmt/log"
)

// Fmt validates a Core program and writes its canonical rendering to stdout.
type Fmt struct {
	Indent     int  `default:"0"    help:"Indent each level with N spaces (0 indents with a tab)." short:"i"`
	Diagnostic bool `default:"true" help:"Print the offending source line on failure."           negatable:""`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the fmt command.
func (f *Fmt) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	src, err := readSource(ctx, f.Source)
	if err != nil {
		return err
	}

	streams := StreamsFrom(ctx)
	out := bufio.NewWriter(streams.Out)

	perr := lang.Parse(ctx, lang.NewScanner(src), out,
		lang.WithIndentWidth(f.Indent),
		lang.WithLogger(log.Default()),
	)

	// Output rendered before a failure is kept.
	if ferr := out.Flush(); ferr != nil && perr == nil {
		return ErrWriteOutput.Wrap(ferr)
	}

	if perr != nil {
		if f.Diagnostic {
			writeDiagnostic(streams.Err, sourceName(f.Source), src, perr)
		}

		return ErrInvalid.
			With(slog.String("source", sourceName(f.Source))).
			Wrap(perr)
	}

	log.DebugContext(ctx, "formatted program",
		slog.String("source", sourceName(f.Source)),
		slog.Int("bytes", len(src)),
	)

	return nil
}

// Check validates a Core program without rendering it.
type Check struct {
	Diagnostic bool `default:"true" help:"Print the offending source line on failure." negatable:""`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	src, err := readSource(ctx, c.Source)
	if err != nil {
		return err
	}

	err = lang.Check(ctx, bytes.NewReader(src), lang.WithLogger(log.Default()))
	if err != nil {
		if c.Diagnostic {
			writeDiagnostic(StreamsFrom(ctx).Err, sourceName(c.Source), src, err)
		}

		return ErrInvalid.
			With(slog.String("source", sourceName(c.Source))).
			Wrap(err)
	}

	log.InfoContext(ctx, "program is valid",
		slog.String("source", sourceName(c.Source)),
	)

	return nil
}
