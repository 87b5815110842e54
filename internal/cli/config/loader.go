package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/sqlecto/internal/rewrite"
)

// loggerKey is used to store logger in context.
type loggerKey struct{}

// ErrInvalidConfigFile is returned for config files that cannot be read.
var ErrInvalidConfigFile = errors.New("invalid config file")

// Flags that are not plain config keys.
const (
	flagConfigFile    = "config-file"
	flagTableMappings = "table-mappings"
)

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config // Stores the loaded config for access by commands
)

// findConfigFile returns the explicit path, or the first sqlecto config
// file in the working directory.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// parserFor picks the koanf parser from a config file's extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	}
	return nil, fmt.Errorf("%w %s: expected a .json, .yml or .yaml file", ErrInvalidConfigFile, path)
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// LoadConfig loads configuration from defaults, config file, .env values,
// environment variables and flags.
// Precedence (highest to lowest): flags > env vars > .env > config file > defaults
//
// Table mappings from --table-mappings and --table-mappings-file are
// appended after the ones in the config file.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")
	configFileUsed = ""

	// 1. Load defaults
	def := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output_dir":   def.OutputDir,
		"mapping_mode": def.MappingMode,
		"pretty":       def.Pretty,
		"unsupported":  def.Unsupported,
		"verbose":      false,
		"output":       def.OutputFormat,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	if cfgFile == "" && flags != nil {
		cfgFile, _ = flags.GetString(flagConfigFile)
	}
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		parser, err := parserFor(configFileUsed)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(configFileUsed), parser); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrInvalidConfigFile, configFileUsed, err)
		}
	}

	// 3. Load SQLECTO_ values from .env
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	// 4. Load environment variables (SQLECTO_ prefix)
	// Transform: SQLECTO_SOURCE_DIR -> source_dir
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 5. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			// Appended after unmarshalling, or not a config key
			if f.Name == flagTableMappings || f.Name == flagConfigFile {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 6. Unmarshal into Config struct
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				tableMappingHook(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           &cfg,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// 7. Append flag and file mappings
	if flags != nil && flags.Changed(flagTableMappings) {
		entries, _ := flags.GetStringSlice(flagTableMappings)
		mappings, err := rewrite.ParseMappings(entries)
		if err != nil {
			return nil, err
		}
		cfg.TableMappings = append(cfg.TableMappings, mappings...)
	}
	if cfg.TableMappingsFile != "" {
		mappings, err := LoadMappingsFile(cfg.TableMappingsFile)
		if err != nil {
			return nil, err
		}
		cfg.TableMappings = append(cfg.TableMappings, mappings...)
	}

	if err := cfg.Check(); err != nil {
		return nil, err
	}

	// Store config for access by commands
	currentConfig = &cfg

	return &cfg, nil
}

func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// loadDotEnv layers SQLECTO_ entries of a .env file. A missing file is
// not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil //nolint:nilerr // no .env file
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	m := make(map[string]interface{})
	for key, val := range values {
		if strings.HasPrefix(key, EnvPrefix) {
			m[envKey(key)] = val
		}
	}
	if len(m) == 0 {
		return nil
	}
	if err := k.Load(confmap.Provider(m, "."), nil); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the currently loaded configuration.
// This is available after LoadConfig is called.
func GetCurrentConfig() *Config {
	return currentConfig
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
