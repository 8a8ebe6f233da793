package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/incline/internal/logging"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	presetIndex = 0
	var out bytes.Buffer
	cmd := newRootCmd(logging.Discard())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestPresetsCommand(t *testing.T) {
	out := execute(t, "presets")
	for _, want := range []string{"HEIGHT", "0.25 m", "2.50 m", "1.11 m/s", "1.010 s", "2.475 m/s"} {
		if !strings.Contains(out, want) {
			t.Errorf("presets output missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(strings.TrimSpace(out), "\n"); n != 5 {
		t.Errorf("expected header and 5 rows, got %d lines", n+1)
	}
}

func TestFitCommand(t *testing.T) {
	out := execute(t, "fit")
	for _, want := range []string{"v = 1.51h + 0.49", "R² = 0.9057", "v = 2.02h^0.69"} {
		if !strings.Contains(out, want) {
			t.Errorf("fit output missing %q:\n%s", want, out)
		}
	}
}

func TestRunCommand(t *testing.T) {
	out := execute(t, "run", "--preset", "4")
	for _, want := range []string{"height 1.25 m", "ticks:       61", "match:       Deviation", "linear fit:"} {
		if !strings.Contains(out, want) {
			t.Errorf("run output missing %q:\n%s", want, out)
		}
	}
}

func TestRunCommandUnknownPreset(t *testing.T) {
	cmd := newRootCmd(logging.Discard())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"run", "--preset", "9"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unknown preset")
	}
}
