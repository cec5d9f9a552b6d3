package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/samsaffron/markplus/internal/table"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a configuration value outside its allowed set.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Table TableConfig `mapstructure:"table" yaml:"table"`
	Fmt   FmtConfig   `mapstructure:"fmt" yaml:"fmt"`
	Log   LogConfig   `mapstructure:"log" yaml:"log"`
}

// TableConfig configures table formatting
type TableConfig struct {
	Width         string `mapstructure:"width" yaml:"width"`                   // chars, display, or graphemes
	KeepAlignment bool   `mapstructure:"keep_alignment" yaml:"keep_alignment"` // preserve :--- / ---: / :-: markers
	CursorScope   string `mapstructure:"cursor_scope" yaml:"cursor_scope"`     // document or table
}

// FmtConfig configures the fmt command
type FmtConfig struct {
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`
	Color   string   `mapstructure:"color" yaml:"color"` // auto, always, or never
}

// LogConfig configures diagnostic logging on stderr
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn, or error
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			Width:       table.WidthChars.String(),
			CursorScope: table.ScopeDocument.String(),
		},
		Fmt: FmtConfig{
			Exclude: []string{},
			Color:   "auto",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the config file (optional) and MARKPLUS_* environment
// overrides. An explicit path replaces the XDG search. The result is not
// validated; callers apply flag overrides first and then call Validate.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(expandEnv(path))
	} else {
		configPath, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get config dir: %w", err)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configPath)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MARKPLUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("table.width", def.Table.Width)
	v.SetDefault("table.keep_alignment", def.Table.KeepAlignment)
	v.SetDefault("table.cursor_scope", def.Table.CursorScope)
	v.SetDefault("fmt.exclude", def.Fmt.Exclude)
	v.SetDefault("fmt.color", def.Fmt.Color)
	v.SetDefault("log.level", def.Log.Level)

	// Read config file (optional - won't error if missing)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		slog.Debug("loaded config", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate checks enum values and exclude patterns. Every problem is
// reported, each wrapping ErrInvalid.
func (c *Config) Validate() error {
	var errs []error

	if _, err := table.ParseWidthMode(c.Table.Width); err != nil {
		errs = append(errs, fmt.Errorf("%w: table.width: %v", ErrInvalid, err))
	}
	if _, err := table.ParseCursorScope(c.Table.CursorScope); err != nil {
		errs = append(errs, fmt.Errorf("%w: table.cursor_scope: %v", ErrInvalid, err))
	}
	switch c.Fmt.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("%w: fmt.color: %q (want auto, always, or never)", ErrInvalid, c.Fmt.Color))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.level: %v", ErrInvalid, err))
	}
	for _, pattern := range c.Fmt.Exclude {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: fmt.exclude %q: %v", ErrInvalid, pattern, err))
		}
	}

	return errors.Join(errs...)
}

// ApplyOverrides applies command line overrides. Empty strings and nil
// pointers leave the configured value in place.
func (c *Config) ApplyOverrides(width, scope string, keepAlignment *bool) {
	if width != "" {
		c.Table.Width = width
	}
	if scope != "" {
		c.Table.CursorScope = scope
	}
	if keepAlignment != nil {
		c.Table.KeepAlignment = *keepAlignment
	}
}

// Formatter builds a table formatter from the table section.
func (c *Config) Formatter() (*table.Formatter, error) {
	width, err := table.ParseWidthMode(c.Table.Width)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	scope, err := table.ParseCursorScope(c.Table.CursorScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return table.New(
		table.WithWidthMode(width),
		table.WithKeepAlignment(c.Table.KeepAlignment),
		table.WithCursorScope(scope),
	), nil
}

// ParseLevel maps a log.level value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown level %q", s)
	}
}

// YAML renders the effective configuration.
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(out), nil
}

// expandEnv expands ${VAR} or $VAR in a string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		varName := s[2 : len(s)-1]
		return os.Getenv(varName)
	}
	if strings.HasPrefix(s, "$") {
		return os.Getenv(s[1:])
	}
	return s
}

// GetConfigDir returns the XDG config directory for markplus.
// Uses $XDG_CONFIG_HOME if set, otherwise ~/.config
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "markplus"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "markplus"), nil
}

// GetConfigPath returns the path where the config file should be located
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// Exists returns true if a config file exists
func Exists() bool {
	path, err := GetConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Save writes the config to disk
func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	body, err := cfg.YAML()
	if err != nil {
		return err
	}
	content := `# markplus configuration
# table.width: chars, display (East Asian wide = 2), or graphemes
# table.cursor_scope: document (format every table) or table (only the one under the cursor)
# fmt.exclude: glob patterns skipped by "markplus fmt", e.g. "vendor/**"
` + body

	return os.WriteFile(path, []byte(content), 0600)
}
