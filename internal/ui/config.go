package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/focus/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration focus will use, after applying the config
file and FOCUS_* environment variables.

With --init, writes a config file with default values if none exists.

Example:
  focus config --init`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runConfig(cmd.OutOrStdout(), initFile)
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Create the config file with defaults if missing")
	return cmd
}

func (a *App) runConfig(w io.Writer, initFile bool) error {
	configPath := a.configPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	fmt.Fprintf(w, "Config file: %s\n\n", configPath)

	if initFile {
		_, statErr := os.Stat(configPath)
		switch {
		case os.IsNotExist(statErr):
			if err := config.Default().SaveTo(configPath); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintf(w, "Created %s\n\n", configPath)
		case statErr != nil:
			return fmt.Errorf("checking config path: %w", statErr)
		default:
			fmt.Fprintln(w, formatMuted("Config file already exists, leaving it untouched."))
			fmt.Fprintln(w)
		}
	}

	printConfig(w, a.config)
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, formatHeader("Current configuration:"))
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[session]")
	fmt.Fprintf(w, "  start_msg = %q\n", cfg.Session.StartMsg)
	fmt.Fprintf(w, "  quit_key  = %q\n", cfg.Session.QuitKey)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  color     = %t\n", cfg.UI.Color)
}
