package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pianoratio",
	Short: "Piano keys to frequency ratios",
	Long: `Lays out piano keyboard octaves and turns each key's note into its
frequency ratio, from the command line, over http or from a midi keyboard.`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.ExecuteContext(context.Background()))
}
