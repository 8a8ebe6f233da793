package viz

import (
	"testing"

	"github.com/san-kum/incline/internal/config"
)

func TestLayout(t *testing.T) {
	l := NewLayout(config.DefaultConfig())

	if l.Scene.W != 75 || l.Panel.X != 75 {
		t.Errorf("expected 75-column scene, got %+v / %+v", l.Scene, l.Panel)
	}
	if len(l.Presets) != 5 {
		t.Fatalf("expected 5 preset buttons, got %d", len(l.Presets))
	}

	all := append(append([]Rect{}, l.Presets...), l.Toggle, l.Reset, l.Graph, l.Readout)
	for _, r := range all {
		if r.X < l.Panel.X || r.X+r.W > l.Cols || r.Y < 0 || r.Y+r.H > l.Rows {
			t.Errorf("rect %+v outside the right panel", r)
		}
	}
	if l.Graph.W != 48 || l.Graph.H != 12 {
		t.Errorf("unexpected graph size %+v", l.Graph)
	}
	if l.Readout.H < 13 {
		t.Errorf("readout too short for all lines: %+v", l.Readout)
	}
}

func TestHitTest(t *testing.T) {
	l := NewLayout(config.DefaultConfig())

	tests := []struct {
		name string
		x, y int
		want Target
	}{
		{"first preset", l.Presets[0].X, l.Presets[0].Y, Target{Kind: TargetPreset, Index: 0}},
		{"last preset right edge", l.Presets[4].X + l.Presets[4].W - 1, l.Presets[4].Y, Target{Kind: TargetPreset, Index: 4}},
		{"toggle", l.Toggle.X + 3, l.Toggle.Y, Target{Kind: TargetToggle}},
		{"reset", l.Reset.X, l.Reset.Y, Target{Kind: TargetReset}},
		{"gap between presets", l.Presets[0].X, l.Presets[0].Y + 1, Target{Kind: TargetNone}},
		{"scene", 10, 10, Target{Kind: TargetNone}},
		{"past button", l.Toggle.X + l.Toggle.W, l.Toggle.Y, Target{Kind: TargetNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.HitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%d,%d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
