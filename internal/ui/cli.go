package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/focus/internal/config"
	"github.com/javiermolinar/focus/internal/debuglog"
	"github.com/javiermolinar/focus/internal/session"
	"github.com/javiermolinar/focus/internal/terminal"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command

	in     *os.File
	out    io.Writer
	errOut io.Writer

	debug      bool   // Enable debug logging
	configPath string // Overrides the default config file
	quitKey    string
	message    string
	noColor    bool
}

// NewApp creates a new CLI application. A nil cfg is loaded from --config or
// the default path once flags are parsed.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, in: os.Stdin, out: os.Stdout, errOut: os.Stderr}

	a.root = &cobra.Command{
		Use:   "focus",
		Short: "Time a focus session from the terminal",
		Long: `Focus starts a timer and waits for the quit key.

When you press it, focus prints how long you were focused.
Sessions shorter than five seconds print nothing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.loadConfig()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runSession()
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+debuglog.Path+")")
	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file path (default "+config.DefaultConfigPath()+")")
	a.root.Flags().StringVarP(&a.quitKey, "quit-key", "k", "", "Key that ends the session")
	a.root.Flags().StringVarP(&a.message, "message", "m", "", "Message printed when the session starts")
	a.root.Flags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		// Overrides the root hook: version works even with a broken config.
		PersistentPreRun: func(_ *cobra.Command, _ []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "focus %s (commit: %s)\n", Version, Commit)
		},
	}
}

// loadConfig loads the file named by --config, or the default file when no
// config was handed to NewApp.
func (a *App) loadConfig() error {
	path := a.configPath
	if path == "" {
		if a.config != nil {
			return nil
		}
		path = config.DefaultConfigPath()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.config = cfg
	return nil
}

// applyFlags overlays command-line flags on the loaded config.
func (a *App) applyFlags() error {
	if a.quitKey != "" {
		a.config.Session.QuitKey = a.quitKey
	}
	if a.message != "" {
		a.config.Session.StartMsg = a.message
	}
	if a.noColor {
		a.config.UI.Color = false
	}
	if err := a.config.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

func (a *App) runSession() error {
	if err := a.applyFlags(); err != nil {
		return err
	}

	if err := debuglog.Init(a.debug); err != nil {
		return err
	}
	defer debuglog.Close()

	if !a.config.UI.Color {
		DisableColor()
	}

	guard := terminal.NewGuard(a.in, a.out)
	driver, err := session.NewDriver(a.config.Session, guard, terminal.NewKeyReader(a.in), a.out, session.Options{
		ErrOut:       a.errOut,
		StartStyle:   formatStart,
		SummaryStyle: formatSummary,
	})
	if err != nil {
		return err
	}
	return driver.Run()
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
