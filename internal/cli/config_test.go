package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "nebula.toml", `
words = "analysis.json"
show_fps = true
script = "check.json"

[window]
width = 800
title = "Headlines"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("Width = %d, want 800", cfg.Window.Width)
	}
	if cfg.Window.Height != defaultHeight {
		t.Errorf("Height = %d, want default %d", cfg.Window.Height, defaultHeight)
	}
	if cfg.Words != "analysis.json" || cfg.Script != "check.json" || !cfg.ShowFPS {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want default", cfg.ScreenshotDir)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "wordz = \"a.json\"\n", "unknown keys: wordz"},
		{"bad syntax", "words = \n", "load config"},
		{"bad size", "[window]\nwidth = -1\n", "invalid window size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "c.toml", tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "none.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConfigTitle(t *testing.T) {
	tests := []struct {
		name    string
		window  string
		article string
		want    string
	}{
		{"configured wins", "Mine", "Article", "Mine"},
		{"article title", "", "Article", "Article"},
		{"default", "", "", defaultTitle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Window.Title = tt.window
			if got := cfg.title(tt.article); got != tt.want {
				t.Errorf("title = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveViewConfig(t *testing.T) {
	path := writeFile(t, "nebula.toml", "debug = true\n[window]\nwidth = 640\nheight = 480\n")

	cmd := newViewCmd()
	if err := cmd.ParseFlags([]string{"--config", path, "--height", "600", "--fps"}); err != nil {
		t.Fatal(err)
	}
	f := viewFlags{config: path, height: 600, fps: true}

	cfg, err := resolveViewConfig(cmd, f, []string{"words.json"})
	if err != nil {
		t.Fatalf("resolveViewConfig: %v", err)
	}
	if cfg.Window.Width != 640 {
		t.Errorf("Width = %d, want 640 from file", cfg.Window.Width)
	}
	if cfg.Window.Height != 600 {
		t.Errorf("Height = %d, want 600 from flag", cfg.Window.Height)
	}
	if !cfg.ShowFPS || !cfg.Debug {
		t.Errorf("ShowFPS = %v, Debug = %v, want both true", cfg.ShowFPS, cfg.Debug)
	}
	if cfg.Words != "words.json" {
		t.Errorf("Words = %q, want words.json", cfg.Words)
	}
}

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"view", "layout"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := root.Find([]string{name})
			if err != nil || cmd == root {
				t.Fatalf("subcommand %q not registered", name)
			}
		})
	}
	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Error("missing --verbose flag")
	}
}
