// Package internal holds helpers shared by the rx command binaries.
package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Default configuration values.
const (
	DefaultOutput = "pcre"
	EnvPrefix     = "RX_"
)

// ConfigFileNames are searched in the working directory, then the home
// directory, when no config file is given explicitly.
var ConfigFileNames = []string{"rx.yaml", "rx.yml", ".rx.yaml", ".rx.yml"}

// Config holds the CLI settings.
type Config struct {
	Output  string `koanf:"output"`
	Strict  bool   `koanf:"strict"`
	Verbose bool   `koanf:"verbose"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

type configKey struct{}

// WithConfig stores cfg in ctx.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFrom returns the Config stored in ctx, or the defaults.
func ConfigFrom(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok {
		return cfg
	}
	return &Config{Output: DefaultOutput}
}

// LoadConfig loads configuration from defaults, a YAML file, RX_ environment
// variables and explicitly set flags, in increasing order of precedence.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":  DefaultOutput,
		"strict":  false,
		"verbose": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// RX_OUTPUT -> output
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	cfg.File = used
	return &cfg, nil
}

// findConfigFile returns the explicit path if given, otherwise the first
// known config file name found in the working or home directory.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	for _, dir := range dirs {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}
	return ""
}
