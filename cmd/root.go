package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/samsaffron/markplus/internal/config"
	"github.com/samsaffron/markplus/internal/table"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "dev"

var (
	configFile    string
	debug         bool
	widthFlag     string
	scopeFlag     string
	keepAlignment bool
)

var rootCmd = &cobra.Command{
	Use:   "markplus",
	Short: "Format Markdown tables and edit checklists, links and lists",
	Long: `markplus normalizes pipe tables in Markdown documents and provides the
small text transforms an editor binds to keys.

Examples:
  markplus fmt README.md                # print README.md with tables formatted
  markplus fmt -w 'docs/**/*.md'        # rewrite files in place
  markplus fmt -d .                     # show what would change
  markplus fmt-at --at README.md:12     # format the table under a cursor
  markplus checkbox < todo.md           # toggle checkboxes line by line
  markplus call create-link! "docs"     # run an editor operation by name

  markplus config init                  # write a config file`,
	Version:           Version,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if debug {
			level = slog.LevelDebug
		}
		setupLogging(cmd.ErrOrStderr(), level)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/markplus/config.yaml)")
	flags.BoolVar(&debug, "debug", false, "Log debug information to stderr")
	AddWidthFlag(rootCmd, &widthFlag)
	AddScopeFlag(rootCmd, &scopeFlag)
	AddKeepAlignmentFlag(rootCmd, &keepAlignment)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// loadConfig reads the config file and applies command line overrides.
// log.level from the file applies unless --debug was given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	if !debug {
		if level, err := config.ParseLevel(cfg.Log.Level); err == nil {
			setupLogging(cmd.ErrOrStderr(), level)
		}
	}

	var keep *bool
	if cmd.Flags().Changed("keep-alignment") {
		keep = &keepAlignment
	}
	cfg.ApplyOverrides(widthFlag, scopeFlag, keep)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFormatter returns the configured table formatter.
func loadFormatter(cmd *cobra.Command) (*config.Config, *table.Formatter, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	f, err := cfg.Formatter()
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("formatter", "width", f.WidthMode(), "scope", f.CursorScope(), "keep_alignment", f.KeepAlignment())
	return cfg, f, nil
}
