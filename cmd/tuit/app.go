package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tuit/internal/config"
	"github.com/grindlemire/go-tuit/internal/debug"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

var (
	colorError  = color.New(color.FgRed, color.Bold)
	colorHeader = color.New(color.Bold)
	colorResult = color.New(color.FgGreen)
	colorMuted  = color.New(color.FgWhite, color.Faint)
)

// App holds the CLI state shared by every command.
type App struct {
	root   *cobra.Command
	cfg    *config.Config
	logger *log.Logger

	configPath string
	renderer   string
	profile    string
	width      int
	height     int
	altScreen  bool
	debugLog   string
	verbose    bool
	noColor    bool
}

// NewApp builds the command tree.
func NewApp() *App {
	a := &App{
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "tuit", Level: log.WarnLevel}),
	}

	a.root = &cobra.Command{
		Use:   "tuit",
		Short: "Draw tuit widgets on a terminal",
		Long: `tuit draws small widget compositions on a terminal.

Each demo is built from the same widgets: text, buttons, sweepers and
the centring, stacking, backdrop and margin combinators.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return debug.Close()
		},
	}

	flags := a.root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.DefaultConfigPath(), "Path to the configuration file")
	flags.StringVarP(&a.renderer, "renderer", "r", "", "Renderer: ansi, tcell or bubble")
	flags.StringVar(&a.profile, "profile", "", "Colour profile: auto, truecolor, ansi256, ansi or ascii")
	flags.IntVar(&a.width, "width", 0, "Terminal width for the ansi renderer (0 uses the demo size)")
	flags.IntVar(&a.height, "height", 0, "Terminal height for the ansi renderer (0 uses the demo size)")
	flags.BoolVar(&a.altScreen, "alt-screen", false, "Run the bubble renderer on the alternate screen")
	flags.StringVar(&a.debugLog, "debug-log", "", "Write debug logs to this file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log configuration details to stderr")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable coloured CLI output")

	a.root.AddCommand(a.promptCmd())
	a.root.AddCommand(a.splitCmd())
	a.root.AddCommand(a.stackingCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.versionCmd())

	return a
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// setup loads the configuration, applies flag overrides and starts debug
// logging.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if a.noColor {
		color.NoColor = true
	}
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadFrom(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.logger.Debug("loaded config", "path", a.configPath)

	flags := cmd.Flags()
	if flags.Changed("renderer") {
		cfg.Display.Renderer = a.renderer
	}
	if flags.Changed("profile") {
		cfg.Display.Profile = a.profile
	}
	if flags.Changed("width") {
		cfg.Display.Width = a.width
	}
	if flags.Changed("height") {
		cfg.Display.Height = a.height
	}
	if flags.Changed("alt-screen") {
		cfg.Display.AltScreen = a.altScreen
	}
	if flags.Changed("debug-log") {
		cfg.Debug.LogPath = a.debugLog
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.cfg = cfg

	if cfg.Debug.LogPath != "" {
		if err := debug.Init(cfg.Debug.LogPath); err != nil {
			a.logger.Warn("debug logging disabled", "err", err)
		}
	}

	a.logger.Debug("display",
		"renderer", cfg.Display.Renderer,
		"profile", cfg.Display.Profile,
		"width", cfg.Display.Width,
		"height", cfg.Display.Height,
	)
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tuit %s (commit: %s)\n", Version, Commit)
		},
	}
}

func printError(w io.Writer, err error) {
	colorError.Fprint(w, "error: ")
	fmt.Fprintln(w, err)
}
