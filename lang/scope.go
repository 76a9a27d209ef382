package lang

import (
	"log/slog"
	"slices"
	"strings"
)

// Scope is the table of identifiers visible at the current point of a parse.
//
// It is a stack of frames, one per open block. The program frame is at the
// bottom and is never popped. Each frame maps a declared name to whether it
// has been assigned. A name is visible if any frame holds it.
//
// No operation on a Scope fails; callers validate names before mutating it.
type Scope struct {
	frames []map[string]bool
}

// NewScope returns a scope holding only the empty program frame.
func NewScope() *Scope {
	return &Scope{frames: []map[string]bool{{}}}
}

// Push opens a new innermost block frame.
func (s *Scope) Push() {
	s.frames = append(s.frames, map[string]bool{})
}

// Pop discards the innermost block frame and every name declared in it.
// It has no effect when only the program frame remains.
func (s *Scope) Pop() {
	if len(s.frames) <= 1 {
		return
	}

	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth returns the number of open block frames above the program frame.
func (s *Scope) Depth() int { return len(s.frames) - 1 }

// Declare adds name, unassigned, to the innermost frame.
func (s *Scope) Declare(name string) {
	s.frames[len(s.frames)-1][name] = false
}

// Declared reports whether name is visible.
func (s *Scope) Declared(name string) bool {
	_, ok := s.lookup(name)

	return ok
}

// Assign marks name as assigned in the innermost frame that declares it.
// Undeclared names are ignored.
func (s *Scope) Assign(name string) {
	if f, ok := s.lookup(name); ok {
		s.frames[f][name] = true
	}
}

// Assigned reports whether the visible declaration of name has been assigned.
func (s *Scope) Assigned(name string) bool {
	f, ok := s.lookup(name)

	return ok && s.frames[f][name]
}

// Names returns the sorted set of visible names.
func (s *Scope) Names() []string {
	var names []string

	for _, frame := range s.frames {
		for name := range frame {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return slices.Compact(names)
}

// lookup returns the index of the innermost frame declaring name.
func (s *Scope) lookup(name string) (int, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if _, ok := s.frames[i][name]; ok {
			return i, true
		}
	}

	return 0, false
}

// LogValue implements slog.LogValuer.
func (s *Scope) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("depth", s.Depth()),
		slog.String("names", strings.Join(s.Names(), ",")),
	)
}
