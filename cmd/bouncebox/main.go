package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/san-kum/bouncebox/internal/config"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	logFile    string
	debug      bool

	width    int
	height   int
	interval time.Duration
	theme    string
	sound    bool
	hud      bool

	ticks      int
	scriptFile string
	svgTick    int
	svgOut     string
)

// logSink is closed after the command finishes.
var logSink io.Closer

func main() {
	rootCmd := &cobra.Command{
		Use:           "bouncebox",
		Short:         "a box bouncing around a window",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logSink != nil {
				logSink.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			switch cfg.Frontend {
			case "term":
				return runTerm(cfg)
			case "gui":
				return runGUI(cfg)
			}
			return runTUI(cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".bouncebox", "run store directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use a named preset")
	pf.StringVar(&logFile, "log", "", "write logs to this file")
	pf.BoolVar(&debug, "debug", false, "log at debug level")
	pf.IntVar(&width, "width", 0, "initial viewport width")
	pf.IntVar(&height, "height", 0, "initial viewport height")
	pf.DurationVar(&interval, "interval", config.DefaultTickInterval, "time between ticks")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal UI theme")
	pf.BoolVar(&sound, "sound", false, "click on every left/right bounce")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runTUI(cfg)
		},
	}

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "run in a raw terminal screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runTerm(cfg)
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runGUI(cfg)
		},
	}
	guiCmd.Flags().BoolVar(&hud, "hud", true, "draw the status line")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and record every tick",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks")
	runCmd.Flags().StringVar(&scriptFile, "script", "", "input script file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot position and bounce frequency",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of horizontal motion",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render one recorded tick as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgTick, "tick", 0, "tick to render (0 = last)")
	exportSVGCmd.Flags().StringVarP(&svgOut, "output", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s %dx%d", name, p.Window.Width, p.Window.Height)
				if len(p.Script) > 0 {
					fmt.Printf("  script: %v", p.Script)
				}
				fmt.Println()
			}
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, termCmd, guiCmd, runCmd, listCmd, plotCmd, analyzeCmd, exportCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogger installs the default slog logger. Terminal frontends own the
// tty, so without --log their output is discarded.
func setupLogger(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stderr
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		logSink = f
		out = f
	case ownsTerminal(cmd):
		out = io.Discard
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	return nil
}

func ownsTerminal(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "bouncebox", "tui", "term":
		return true
	}
	return false
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("interval") {
		cfg.TickInterval = interval
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("sound") {
		cfg.Sound = sound
	}
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
