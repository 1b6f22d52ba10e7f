package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/ai"
)

// appConfig aggregates the compile options with the backend and AI
// client settings.
type appConfig struct {
	Compile tenderstruct.Options `mapstructure:"compile" yaml:"compile"`
	Backend backendConfig        `mapstructure:"backend" yaml:"backend"`
	AI      ai.Config            `mapstructure:"ai" yaml:"ai"`
}

type backendConfig struct {
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
	APIKey   string `mapstructure:"api_key" yaml:"api_key"`
	// Fallback enables temporary local IDs when the backend is
	// unreachable.
	Fallback bool `mapstructure:"fallback" yaml:"fallback"`
}

func defaultConfig() *appConfig {
	return &appConfig{
		Compile: tenderstruct.DefaultOptions(),
		Backend: backendConfig{Fallback: true},
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".tenderstruct", "config.yaml")
}

// loadConfig reads the config file (if present) over the defaults.
// Environment variables with the TENDERSTRUCT_ prefix override file
// values.
func loadConfig(path string) (*appConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigFile(defaultConfigPath())
	}
	v.SetEnvPrefix("TENDERSTRUCT")
	v.AutomaticEnv()

	cfg := defaultConfig()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if cfg.AI.APIKey != "" {
				cfg.AI.APIKey = "***"
			}
			if cfg.Backend.APIKey != "" {
				cfg.Backend.APIKey = "***"
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			cmd.Print(string(data))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgPath
			if path == "" {
				path = defaultConfigPath()
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config already exists: %s", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			data, err := yaml.Marshal(defaultConfig())
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}
			cmd.Printf("config written to %s\n", path)
			return nil
		},
	})

	return cmd
}
