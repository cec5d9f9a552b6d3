package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/samsaffron/markplus/internal/config"
	"github.com/samsaffron/markplus/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	initForce       bool
	initInteractive bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage markplus configuration",
	Long: `View or edit your markplus configuration.

Examples:
  markplus config                     # show effective config
  markplus config path                # print config file path
  markplus config init                # write defaults (asks when on a terminal)
  markplus config edit                # edit in $EDITOR
  markplus config completion zsh      # generate shell completions`,
	RunE: configShow, // Default to show
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	RunE:  configShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print configuration file path",
	RunE:  configPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file",
	Long: `Write a configuration file with default values. On a terminal the
table settings are asked for interactively unless --interactive=false.`,
	RunE: configInit,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit configuration file in $EDITOR",
	RunE:  configEdit,
}

var configCompletionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script.

Examples:
  markplus config completion bash > ~/.bash_completion.d/markplus
  markplus config completion zsh > "${fpath[1]}/_markplus"
  markplus config completion fish | source`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE:      configCompletion,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configCompletionCmd)
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	configInitCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", true, "Ask for settings when running on a terminal")
}

func configShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return writeConfig(cmd.OutOrStdout(), cfg)
}

func writeConfig(w io.Writer, cfg *config.Config) error {
	out, err := cfg.YAML()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func configPath(cmd *cobra.Command, args []string) error {
	path := configFile
	if path == "" {
		var err error
		path, err = config.GetConfigPath()
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func configInit(cmd *cobra.Command, args []string) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if config.Exists() && !initForce {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	cfg := config.Default()
	if initInteractive && term.IsTerminal(int(os.Stdin.Fd())) {
		cfg, err = ui.RunSetup(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
	return nil
}

func configEdit(cmd *cobra.Command, args []string) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Create default config if it doesn't exist
	if !config.Exists() {
		if err := config.Save(config.Default()); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
	}

	// Get editor from environment
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vi"
	}

	editorCmd := exec.Command(editor, configPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	return editorCmd.Run()
}

func configCompletion(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	switch args[0] {
	case "bash":
		return rootCmd.GenBashCompletion(w)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	}
	return nil
}
