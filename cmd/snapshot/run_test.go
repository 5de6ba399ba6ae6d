package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_WritesSnapshots(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "field.png")

	summary, err := Run(Options{
		Width:   320,
		Height:  240,
		Frames:  20,
		ClickAt: 5,
		ClickX:  -1,
		ClickY:  -1,
		Out:     out,
		Every:   10,
		Seed:    3,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.Frames != 20 || len(summary.Energy) != 20 {
		t.Errorf("expected 20 frames of energy, got frames=%d energy=%d", summary.Frames, len(summary.Energy))
	}
	if !summary.Dispersed {
		t.Error("expected the injected click to disperse")
	}
	if summary.Particles == 0 {
		t.Error("expected particles on a 320x240 surface")
	}
	if summary.Profile != "compact" {
		t.Errorf("expected compact profile below the breakpoint, got %s", summary.Profile)
	}

	want := []string{
		filepath.Join(dir, "field_0010.png"),
		filepath.Join(dir, "field_0020.png"),
		out,
	}
	if len(summary.Written) != len(want) {
		t.Fatalf("expected %d files, got %v", len(want), summary.Written)
	}
	for i, path := range want {
		if summary.Written[i] != path {
			t.Errorf("file %d: expected %s, got %s", i, path, summary.Written[i])
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected %s to exist: %v", path, err)
		}
	}
}

// TestRun_ClickRaisesEnergy 粒子稳定后点击，动能明显上升
func TestRun_ClickRaisesEnergy(t *testing.T) {
	summary, err := Run(Options{
		Width: 400, Height: 300,
		Frames:  160,
		ClickAt: 150,
		ClickX:  -1, ClickY: -1,
		Seed: 9,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	before, after := summary.Energy[149], summary.Energy[150]
	if after <= before*10 {
		t.Errorf("expected energy to jump on the click frame: before=%.2f after=%.2f", before, after)
	}
}

func TestRun_ZeroArea(t *testing.T) {
	summary, err := Run(Options{Width: 0, Height: 0, Frames: 3, ClickAt: -1, Out: filepath.Join(t.TempDir(), "x.png")})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Particles != 0 || summary.Frames != 3 {
		t.Errorf("expected empty field that still ticks, got particles=%d frames=%d", summary.Particles, summary.Frames)
	}
	if len(summary.Written) != 0 {
		t.Errorf("nothing should be written for a zero-area surface, got %v", summary.Written)
	}
}

func TestRun_NegativeFrames(t *testing.T) {
	if _, err := Run(Options{Width: 10, Height: 10, Frames: -1}); err == nil {
		t.Error("expected error for negative frames")
	}
}

func TestFramePath(t *testing.T) {
	tests := map[string]string{
		"field.png":      "field_0030.png",
		"out/frames.png": "out/frames_0030.png",
		"noext":          "noext_0030.png",
	}
	for in, want := range tests {
		if got := filepath.ToSlash(framePath(in, 30)); got != want {
			t.Errorf("framePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParsePoint(t *testing.T) {
	x, y, err := parsePoint("12.5, 40")
	if err != nil || x != 12.5 || y != 40 {
		t.Errorf("parsePoint: got (%v, %v, %v)", x, y, err)
	}
	for _, bad := range []string{"", "1", "a,2", "1,b", "1,2,3"} {
		if _, _, err := parsePoint(bad); err == nil {
			t.Errorf("parsePoint(%q): expected error", bad)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(&Summary{
		Label:     "Aoba",
		Width:     1024,
		Height:    768,
		Profile:   "standard",
		Particles: 1200,
		Frames:    3,
		Energy:    []float64{10, 5, 2.5},
		Written:   []string{"field.png"},
	}, true)

	for _, want := range []string{"AOBA", "1024x768 (standard)", "1200", "2.50", "Kinetic energy per frame", "field.png"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
