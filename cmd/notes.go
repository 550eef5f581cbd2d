package cmd

import (
	"fmt"

	"github.com/jsphweid/pianoratio/midi"
	"github.com/jsphweid/pianoratio/pitch"
	"github.com/jsphweid/pianoratio/press"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(notesCmd)
}

var notesCmd = &cobra.Command{
	Use:   "notes FILE",
	Short: "Prints the notes of a midi file with their ratios",
	Long:  `Prints every note-on of a midi file, in order, with its frequency ratio.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		for _, note := range midi.Notes(s) {
			fmt.Fprintf(cmd.OutOrStdout(), "%v\t%v\n", note, press.Format(pitch.ComputeRatio(note)))
		}
		return nil
	},
}
