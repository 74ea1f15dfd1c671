package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	defaultWidth  = 1280
	defaultHeight = 720
	defaultTitle  = "3D News Topic Nebula"
)

// Config holds the viewer settings. It is read from an optional TOML file
// and then overridden by any flags given on the command line:
//
//	words = "analysis.json"
//	debug = false
//	show_fps = true
//	screenshot_dir = "shots"
//	script = "check.json"
//
//	[window]
//	width = 1280
//	height = 720
//	title = "Topic Nebula"
type Config struct {
	Window        WindowConfig `toml:"window"`
	Words         string       `toml:"words"`
	Debug         bool         `toml:"debug"`
	ShowFPS       bool         `toml:"show_fps"`
	ScreenshotDir string       `toml:"screenshot_dir"`
	Script        string       `toml:"script"`
	// ExitAfterScript closes the window once the script has run.
	ExitAfterScript bool `toml:"exit_after_script"`
}

// WindowConfig is the [window] table.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// DefaultConfig returns the settings used when no file or flag says otherwise.
func DefaultConfig() Config {
	return Config{
		Window:        WindowConfig{Width: defaultWidth, Height: defaultHeight},
		ScreenshotDir: "screenshots",
	}
}

// LoadConfig decodes the TOML file at path over DefaultConfig. Unknown keys
// are an error so typos do not go unnoticed.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// title picks the window title: configured, then article title, then default.
func (c Config) title(articleTitle string) string {
	switch {
	case c.Window.Title != "":
		return c.Window.Title
	case articleTitle != "":
		return articleTitle
	}
	return defaultTitle
}
