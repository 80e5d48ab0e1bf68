// Init command for the gridfig CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the figure library",
	Long: `Init creates the configuration directory with a default config.yaml
and the data directory with an empty figure library.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// PersistentPreRunE already created the config dir and default
		// config.yaml; attaching creates the data dir and schema.
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}

		fmt.Println("Library initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		return nil
	},
}
