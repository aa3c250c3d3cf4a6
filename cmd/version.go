/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the taskdeck version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskdeck %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
