package script

import (
	"errors"
	"testing"

	"github.com/san-kum/bouncebox/internal/world"
)

func TestParse(t *testing.T) {
	sc, err := Parse([]string{
		"10:s",
		"# comment",
		"0:w",
		"",
		"5:resize=300x150",
		"7:release:w",
		"9:a",
		"20:esc",
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	want := []Step{
		{0, world.Press(world.KeySpeedUp)},
		{5, world.Resized(300, 150)},
		{7, world.Release(world.KeySpeedUp)},
		{9, world.Press(world.KeyOther)},
		{10, world.Press(world.KeySlowDown)},
		{20, world.Press(world.KeyExit)},
	}
	got := sc.Steps()
	if len(got) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no colon", "10w"},
		{"bad tick", "x:w"},
		{"negative tick", "-1:w"},
		{"bad resize", "3:resize=300"},
		{"zero resize", "3:resize=0x10"},
		{"unknown key", "3:jump"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]string{tt.line})
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("expected ErrSyntax, got %v", err)
			}
		})
	}
}

func TestEventsFollowTicks(t *testing.T) {
	sc, err := Parse([]string{"0:w", "2:s", "2:w"})
	if err != nil {
		t.Fatal(err)
	}
	w := world.Default()

	counts := []int{}
	for range 4 {
		counts = append(counts, len(sc.Events()))
		_ = sc.Present(w)
	}
	want := []int{1, 0, 2, 0}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("tick %d: expected %d events, got %d", i, want[i], counts[i])
		}
	}
}
