// Version command for the gridfig CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridfig/gridfig/pkg/gridfig"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gridfig version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gridfig", gridfig.Version)
	},
}
