package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/jsphweid/pianoratio/constants"
	"github.com/jsphweid/pianoratio/keyboard"
	"github.com/jsphweid/pianoratio/pitch"
	"github.com/jsphweid/pianoratio/press"
	"github.com/spf13/cobra"
)

func init() {
	layoutCmd.Flags().Int("width", constants.GetKeyWidth(), "white key width in pixels")
	layoutCmd.Flags().Bool("json", false, "print json instead of a table")
	rootCmd.AddCommand(layoutCmd)
}

var layoutCmd = &cobra.Command{
	Use:   "layout [OCTAVE]",
	Short: "Prints the keys of an octave",
	Long:  `Prints the keys of an octave with their kind, position and ratio. Defaults to octave 4.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		octave := constants.DefaultOctave
		if len(args) == 1 {
			var err error
			if octave, err = strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("octave must be an integer: %w", err)
			}
		}
		width, _ := cmd.Flags().GetInt("width")
		asJSON, _ := cmd.Flags().GetBool("json")

		o := keyboard.Generate(octave, keyConfig(width))
		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(o)
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NOTE\tKIND\tINDEX\tOFFSET\tLABEL\tRATIO")
		for _, k := range o.Keys {
			fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%v\t%v\n", k.Note, k.Kind, k.Index, k.Offset, k.Label, press.Format(pitch.ComputeRatio(k.Note)))
		}
		return tw.Flush()
	},
}
