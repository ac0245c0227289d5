package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/texatlas/engine/colors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.ini")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[Window]
title = Floors
width = 640
clear_color = 0.5, 0.25, 0

[data]
dir = levels
assets = res
texture_count = 512
format_version = 2

[timing]
FIFTIES_PER_TURN = 10
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "Floors" || cfg.Width != 640 || cfg.Height != Default().Height {
		t.Errorf("window = %q %dx%d", cfg.Title, cfg.Width, cfg.Height)
	}
	if cfg.ClearColor != (colors.Color{0.5, 0.25, 0, 1}) {
		t.Errorf("clear color = %v", cfg.ClearColor)
	}
	if cfg.TextureCount != 512 || cfg.FormatVersion != 2 || cfg.FiftiesPerTurn != 10 {
		t.Errorf("data/timing = %+v", cfg)
	}
	if cfg.AssetsDir != "res" {
		t.Errorf("assets dir = %q", cfg.AssetsDir)
	}
	if got := cfg.Path("textwalk.dat"); got != filepath.Join("levels", "textwalk.dat") {
		t.Errorf("Path = %q", got)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name, body string
	}{
		{"bad color", "[window]\nclear_color = red\n"},
		{"color range", "[window]\nclear_color = 2,0,0\n"},
		{"zero turn rate", "[timing]\nturn_hz = 0\n"},
		{"negative count", "[data]\ntexture_count = -4\n"},
		{"zero pages", "[data]\npages = 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
