package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/injectivelabs/static-tokens/internal/constants"
	"github.com/injectivelabs/static-tokens/internal/networks"
	"github.com/injectivelabs/static-tokens/internal/securefile"
)

//go:embed config.yaml
var embeddedConfigYAML []byte

type OutputConfig struct {
	Dir              string `mapstructure:"dir"`
	PreserveInternal bool   `mapstructure:"preserveInternal"`
	Collation        string `mapstructure:"collation"`
}

type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

type Config struct {
	Output   OutputConfig `mapstructure:"output"`
	Data     DataConfig   `mapstructure:"data"`
	Networks []string     `mapstructure:"networks"`

	// File is the config file merged over the defaults, if any.
	File string `mapstructure:"-"`
}

// Load layers, lowest first: embedded defaults, the config file (explicit
// path or the first one found in the candidate dirs), .env and STATIC_TOKENS_*
// environment variables, and flags already bound on v.
func Load(v *viper.Viper, explicitPath string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(embeddedConfigYAML)); err != nil {
		return nil, fmt.Errorf("read embedded config: %w", err)
	}

	path, err := resolveConfigFile(explicitPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merge config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.File = path

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize trims values, applies defaults and validates the collation and
// network names.
func (c *Config) Normalize() error {
	c.Output.Dir = strings.TrimSpace(c.Output.Dir)
	if c.Output.Dir == "" {
		c.Output.Dir = constants.DefaultOutDir
	}
	c.Data.Dir = strings.TrimSpace(c.Data.Dir)

	c.Output.Collation = strings.ToLower(strings.TrimSpace(c.Output.Collation))
	switch c.Output.Collation {
	case "":
		c.Output.Collation = constants.CollationLocale
	case constants.CollationBytes, constants.CollationLocale:
	default:
		return fmt.Errorf("invalid output.collation %q (allowed: %s, %s)",
			c.Output.Collation, constants.CollationBytes, constants.CollationLocale)
	}

	nets, err := networks.ParseList(c.Networks)
	if err != nil {
		return fmt.Errorf("networks: %w", err)
	}
	c.Networks = c.Networks[:0]
	for _, n := range nets {
		c.Networks = append(c.Networks, n.String())
	}
	return nil
}

// NetworkList returns the configured networks in generation order.
func (c *Config) NetworkList() ([]networks.Network, error) {
	return networks.ParseList(c.Networks)
}

func resolveConfigFile(explicitPath string) (string, error) {
	if p := strings.TrimSpace(explicitPath); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return p, nil
	}

	dirs, err := securefile.ConfigPathCandidates(constants.AppName, constants.EnvPrefix+"_ENV")
	if err != nil {
		return "", err
	}
	for _, dir := range dirs {
		p := filepath.Join(dir, constants.ConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}
