//go:build pprof

package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/kong"

	"github.com/ardnew/corefmt/log"
	"github.com/ardnew/corefmt/profile"
)

// cacheDir returns the directory holding profiles by default.
var cacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// pprofConfig holds the profiling flags of a pprof build.
type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Profile the run in the given mode." placeholder:"${enum}" short:"p"`
	Dir  string `default:"${pprofDir}"                          help:"Write profiles to this directory."                        type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
		"pprofDir":      filepath.Join(cacheDir(), profile.Tag),
	}
}

func (pprofConfig) group() kong.Group {
	return kong.Group{Key: "pprof", Title: "Profiling (pprof)"}
}

// start profiles the rest of the run when a mode is selected. The profile
// directory is created on demand; if that fails, the run continues without
// profiling.
func (f pprofConfig) start(ctx context.Context) (stop func()) {
	if f.Mode == "" {
		return func() {}
	}

	attrs := []slog.Attr{slog.String("mode", f.Mode), slog.String("dir", f.Dir)}

	if err := os.MkdirAll(f.Dir, 0o700); err != nil {
		log.WarnContext(ctx, "profiling disabled",
			append(attrs, slog.String("error", err.Error()))...)

		return func() {}
	}

	var cfg profile.Config = func() (string, string, bool) { return "", "", false }

	cfg = profile.WithMode(f.Mode)(cfg)
	cfg = profile.WithPath(f.Dir)(cfg)
	cfg = profile.WithQuiet(true)(cfg)

	profiler := cfg.Start()

	log.DebugContext(ctx, "profiling started", attrs...)

	return func() {
		profiler.Stop()
		log.DebugContext(ctx, "profiling stopped", attrs...)
	}
}
