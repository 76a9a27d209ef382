package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ardnew/corefmt/log"
	"github.com/ardnew/corefmt/pkg"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type streamsKey struct{}

// Streams are the standard streams used by commands.
// Nil fields fall back to the process streams.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// WithStreams returns a new context.Context whose commands read and write the
// given streams instead of the process streams.
func WithStreams(ctx context.Context, s Streams) context.Context {
	return context.WithValue(ctx, streamsKey{}, s)
}

// StreamsFrom returns the streams stored in ctx by [WithStreams], with any
// unset stream replaced by its process default.
func StreamsFrom(ctx context.Context) Streams {
	s, _ := ctx.Value(streamsKey{}).(Streams)

	if s.In == nil {
		s.In = os.Stdin
	}

	if s.Out == nil {
		s.Out = os.Stdout
	}

	if s.Err == nil {
		s.Err = os.Stderr
	}

	return s
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// readSource returns the content of the named source file, or of the input
// stream if name is [stdinSource].
func readSource(ctx context.Context, name string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if name == stdinSource || name == "" {
		data, err = io.ReadAll(StreamsFrom(ctx).In)
	} else {
		if ext := filepath.Ext(name); ext != pkg.Extension {
			log.DebugContext(ctx, "unexpected source file extension",
				slog.String("source", name),
				slog.String("extension", ext),
			)
		}

		data, err = os.ReadFile(name)
	}

	if err != nil {
		return nil, ErrReadSource.
			With(slog.String("source", sourceName(name))).
			Wrap(err)
	}

	return data, nil
}

// sourceName returns the name used to refer to a source in messages.
func sourceName(name string) string {
	if name == stdinSource || name == "" {
		return "<stdin>"
	}

	return name
}
