// Root command for the gridfig CLI.
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gridfig/gridfig/internal/paths"
	"github.com/gridfig/gridfig/pkg/gridfig"
	"github.com/gridfig/gridfig/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// defaultStyle holds the style values loaded from config.yaml, applied to
// figures created by the new and load commands.
var defaultStyle types.Style

// logger is the process-wide logger. Nop unless --verbose is set.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:     "gridfig",
	Short:   "Gridfig composes labeled figure grids from image files",
	Version: gridfig.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			logger = l
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		defaultStyle = styleFromConfig(cfg)
		return defaultStyle.Validate()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.gridfig-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(captionCmd)
	rootCmd.AddCommand(rowCmd)
	rootCmd.AddCommand(colCmd)
	rootCmd.AddCommand(resizeCmd)
	rootCmd.AddCommand(styleCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(deleteCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > GRIDFIG_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > GRIDFIG_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
