package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/nebula"
	"github.com/phanxgames/nebula/ecs"
)

// scriptStep is the fixed frame time used for scripted runs so screenshots
// are reproducible.
const scriptStep = 1.0 / 60

// viewFlags holds the command-line values for view. Only flags the user
// actually set override the config file.
type viewFlags struct {
	config          string
	width, height   int
	fps, debug      bool
	script          string
	screenshots     string
	exitAfterScript bool
}

func newViewCmd() *cobra.Command {
	var f viewFlags

	cmd := &cobra.Command{
		Use:   "view [words.json]",
		Short: "Open a window showing the word cloud",
		Long: `Open a window showing the word cloud for an analysis file ("-" for stdin).
Without a file the window shows a placeholder prompt.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveViewConfig(cmd, f, args)
			if err != nil {
				return err
			}
			return runView(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&f.config, "config", "", "TOML config file")
	cmd.Flags().IntVar(&f.width, "width", defaultWidth, "window width in pixels")
	cmd.Flags().IntVar(&f.height, "height", defaultHeight, "window height in pixels")
	cmd.Flags().BoolVar(&f.fps, "fps", false, "show the FPS/TPS overlay")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "log per-frame render stats")
	cmd.Flags().StringVar(&f.script, "script", "", "JSON test script to run")
	cmd.Flags().StringVar(&f.screenshots, "screenshots", "", "directory for script screenshots")
	cmd.Flags().BoolVar(&f.exitAfterScript, "exit-after-script", false, "close the window when the script finishes")

	return cmd
}

// resolveViewConfig layers defaults, the config file and explicit flags.
func resolveViewConfig(cmd *cobra.Command, f viewFlags, args []string) (Config, error) {
	cfg := DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = LoadConfig(f.config); err != nil {
			return Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = f.width
	}
	if flags.Changed("height") {
		cfg.Window.Height = f.height
	}
	if flags.Changed("fps") {
		cfg.ShowFPS = f.fps
	}
	if flags.Changed("debug") {
		cfg.Debug = f.debug
	}
	if flags.Changed("script") {
		cfg.Script = f.script
	}
	if flags.Changed("screenshots") {
		cfg.ScreenshotDir = f.screenshots
	}
	if flags.Changed("exit-after-script") {
		cfg.ExitAfterScript = f.exitAfterScript
	}
	if len(args) > 0 {
		cfg.Words = args[0]
	}
	return cfg, cfg.validate()
}

func runView(cmd *cobra.Command, cfg Config) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	analysis, err := readWords(cmd.InOrStdin(), cfg.Words)
	if err != nil {
		return err
	}
	logger.Debug("words loaded", "count", len(analysis.Words), "url", analysis.URL)

	c := nebula.NewContainer(cfg.Window.Width, cfg.Window.Height)
	c.SetLogger(logger.WithPrefix(appName))
	c.SetDebugMode(cfg.Debug)
	c.ShowFPS = cfg.ShowFPS
	c.ScreenshotDir = cfg.ScreenshotDir
	c.SetWords(analysis.Words)

	runner, err := loadScript(cfg.Script)
	if err != nil {
		return err
	}
	if runner != nil {
		c.SetTestRunner(runner)
		c.SetClock(&nebula.FixedStepClock{Step: scriptStep})
	}

	world := donburi.NewWorld()
	ecs.HoverEventType.Subscribe(world, func(w donburi.World, e nebula.HoverEvent) {
		logger.Debug("hover", "event", e.Type, "word", e.Word, "pointer", e.PointerID)
	})
	c.SetEventSink(ecs.NewDonburiSink(world))
	c.SetUpdateFunc(func() error {
		events.ProcessAllEvents(world)
		if runner != nil && cfg.ExitAfterScript && runner.Done() {
			// Stop on the next frame so queued screenshots are drawn first.
			c.RequestStop()
		}
		return nil
	})

	prog := newProgress(logger)
	if err := c.Run(ctx, cfg.title(analysis.Title)); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	prog.done("Viewer closed")
	return nil
}

// loadScript reads a test script, or returns nil when path is empty.
func loadScript(path string) (*nebula.TestRunner, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return nebula.LoadTestScript(data)
}
