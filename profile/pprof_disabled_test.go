//go:build !pprof

package profile

import "testing"

func TestDisabled(t *testing.T) {
	if m := Modes(); len(m) != 0 {
		t.Errorf("Modes() = %v, want none", m)
	}

	p := WithMode("cpu")(baseConfig).Start()
	if _, ok := p.(ignore); !ok {
		t.Errorf("Start() = %T, want no-op", p)
	}
}
