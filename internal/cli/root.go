package cli

import (
	"github.com/spf13/cobra"
)

var verbose bool

func Execute() error {
	rootCmd := &cobra.Command{Use: "appmeta"}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(
		newInspectCmd(),
		newIconCmd(),
		newVersionCmd(),
	)
	return rootCmd.Execute()
}
