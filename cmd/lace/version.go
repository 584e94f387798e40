package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lace/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lace version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "lace "+version.Full())
	},
}
