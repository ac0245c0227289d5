// Package config loads the engine settings from an INI file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hubastard/texatlas/engine/colors"
	"gopkg.in/ini.v1"
)

// Config for the engine run and its data files.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color

	AssetsDir     string // shaders and fonts
	DataDir       string
	Textures      string // legacy floor records
	TextureCount  int
	Faces         string // legacy face records
	FaceCount     int
	Anims         string // anim definitions (JSON)
	Walk          string // textwalk.dat
	Pages         int
	FormatVersion int

	TurnHz         int
	FiftiesPerTurn int
}

// Default is the configuration used when no file is present.
func Default() Config {
	return Config{
		Title:      "Texture Atlas",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.DarkGray,

		AssetsDir:     "assets",
		DataDir:       "data",
		Textures:      "textures.dat",
		TextureCount:  0,
		Faces:         "faces.dat",
		Anims:         "anims.json",
		Walk:          "textwalk.dat",
		Pages:         8,
		FormatVersion: 0,

		TurnHz:         20,
		FiftiesPerTurn: 5,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	f, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveSections: true,
		InsensitiveKeys:     true,
	}, path)
	if err != nil {
		return cfg, fmt.Errorf("load config %q: %w", path, err)
	}
	if err := cfg.apply(f); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) apply(f *ini.File) error {
	win := f.Section("window")
	c.Title = win.Key("title").MustString(c.Title)
	c.Width = win.Key("width").MustInt(c.Width)
	c.Height = win.Key("height").MustInt(c.Height)
	c.VSync = win.Key("vsync").MustBool(c.VSync)
	if win.HasKey("clear_color") {
		col, err := parseColor(win.Key("clear_color").String())
		if err != nil {
			return fmt.Errorf("window.clear_color: %w", err)
		}
		c.ClearColor = col
	}

	data := f.Section("data")
	c.DataDir = data.Key("dir").MustString(c.DataDir)
	c.AssetsDir = data.Key("assets").MustString(c.AssetsDir)
	c.Textures = data.Key("textures").MustString(c.Textures)
	c.TextureCount = data.Key("texture_count").MustInt(c.TextureCount)
	c.Faces = data.Key("faces").MustString(c.Faces)
	c.FaceCount = data.Key("face_count").MustInt(c.FaceCount)
	c.Anims = data.Key("anims").MustString(c.Anims)
	c.Walk = data.Key("walk").MustString(c.Walk)
	c.Pages = data.Key("pages").MustInt(c.Pages)
	c.FormatVersion = data.Key("format_version").MustInt(c.FormatVersion)

	timing := f.Section("timing")
	c.TurnHz = timing.Key("turn_hz").MustInt(c.TurnHz)
	c.FiftiesPerTurn = timing.Key("fifties_per_turn").MustInt(c.FiftiesPerTurn)

	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window size %dx%d", c.Width, c.Height)
	case c.TurnHz <= 0:
		return fmt.Errorf("timing.turn_hz %d", c.TurnHz)
	case c.TextureCount < 0 || c.FaceCount < 0:
		return fmt.Errorf("negative record count")
	case c.Pages <= 0:
		return fmt.Errorf("data.pages %d", c.Pages)
	}
	return nil
}

// Path joins name onto the data directory.
func (c Config) Path(name string) string {
	return filepath.Join(c.DataDir, name)
}

// parseColor accepts "r,g,b" or "r,g,b,a" with components in [0,1].
func parseColor(s string) (colors.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return colors.Color{}, fmt.Errorf("want 3 or 4 components, got %q", s)
	}
	col := colors.Color{0, 0, 0, 1}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return colors.Color{}, fmt.Errorf("component %d: %w", i, err)
		}
		if v < 0 || v > 1 {
			return colors.Color{}, fmt.Errorf("component %d out of range: %v", i, v)
		}
		col[i] = float32(v)
	}
	return col, nil
}
