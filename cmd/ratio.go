package cmd

import (
	"fmt"

	"github.com/jsphweid/pianoratio/pitch"
	"github.com/jsphweid/pianoratio/press"
	"github.com/spf13/cobra"
)

func init() {
	ratioCmd.Flags().Bool("strict", false, "fail on notes that do not parse instead of printing NaN")
	rootCmd.AddCommand(ratioCmd)
}

var ratioCmd = &cobra.Command{
	Use:   "ratio NOTE...",
	Short: "Prints the frequency ratio of notes",
	Long:  `Prints the frequency ratio of each note, e.g. "ratio A4 C#5".`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")
		for _, note := range args {
			ratio := pitch.ComputeRatio(note)
			if strict {
				var err error
				if ratio, err = pitch.Ratio(note); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\t%v\n", note, press.Format(ratio))
		}
		return nil
	},
}
