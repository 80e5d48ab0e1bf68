// Config loading for the gridfig CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/gridfig/gridfig/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend = "backend"
	cfgKeyDataDir = "data_dir"

	cfgKeyCellWidth     = "style.cell_width"
	cfgKeyCellHeight    = "style.cell_height"
	cfgKeyMargin        = "style.margin"
	cfgKeyGutter        = "style.gutter"
	cfgKeyCaptionHeight = "style.caption_height"
	cfgKeyBackground    = "style.background"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Gridfig CLI configuration

# Backend selection
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Default render style for new figures
# style:
#   cell_width: 320
#   cell_height: 240
#   margin: 24
#   gutter: 12
#   caption_height: 28
#   background: "#ffffff"
`

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	setStyleDefaults(v)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// setStyleDefaults registers the built-in defaults so a partial style block
// in config.yaml only overrides the keys it names.
func setStyleDefaults(v *viper.Viper) {
	s := types.DefaultStyle()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyCellWidth, s.CellWidth)
	v.SetDefault(cfgKeyCellHeight, s.CellHeight)
	v.SetDefault(cfgKeyMargin, s.Margin)
	v.SetDefault(cfgKeyGutter, s.Gutter)
	v.SetDefault(cfgKeyCaptionHeight, s.CaptionHeight)
	v.SetDefault(cfgKeyBackground, s.Background)
}

// styleFromConfig assembles the default figure style from config values.
func styleFromConfig(v *viper.Viper) types.Style {
	return types.Style{
		CellWidth:     v.GetInt(cfgKeyCellWidth),
		CellHeight:    v.GetInt(cfgKeyCellHeight),
		Margin:        v.GetInt(cfgKeyMargin),
		Gutter:        v.GetInt(cfgKeyGutter),
		CaptionHeight: v.GetInt(cfgKeyCaptionHeight),
		Background:    v.GetString(cfgKeyBackground),
	}
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
