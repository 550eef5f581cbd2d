package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jsphweid/pianoratio/keyboard"
	"github.com/jsphweid/pianoratio/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export OCTAVE FILE",
	Short: "Writes an octave as a midi file",
	Long:  `Writes a midi file that plays every key of the octave in chromatic order.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		octave, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("octave must be an integer: %w", err)
		}
		return export(octave, args[1])
	},
}

func export(octave int, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("couldn't create file %v: %w", path, err)
	}
	defer f.Close()

	if err := midi.WriteOctave(f, keyboard.GenerateOctave(octave)); err != nil {
		return fmt.Errorf("write failed for file %v: %w", path, err)
	}
	fmt.Printf("Wrote octave %v to %v\n", octave, path)
	return nil
}
