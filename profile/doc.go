// Package profile provides optional runtime profiling for corefmt.
//
// Profiling is backed by [github.com/pkg/profile] and is compiled in only when
// building with the "pprof" build tag. Without the tag, [Config.Start] always
// returns a no-op and [Modes] is empty.
//
// Supported modes: allocs, block, clock, cpu, goroutine, heap, mem, mutex,
// thread, and trace.
//
//	var cfg profile.Config = func() (string, string, bool) { return "", "", false }
//
//	cfg = profile.WithMode("cpu")(cfg)
//	cfg = profile.WithPath("/tmp/profiles")(cfg)
//
//	defer cfg.Start().Stop()
//
// Profiles are written to the configured directory with names matching the
// mode (e.g., cpu.pprof) and can be inspected with:
//
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
