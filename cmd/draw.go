package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/pianoratio/constants"
	"github.com/jsphweid/pianoratio/keyboard"
	"github.com/jsphweid/pianoratio/render"
	"github.com/spf13/cobra"
)

func init() {
	drawCmd.Flags().Int("cell", 5, "terminal columns per white key")
	drawCmd.Flags().String("span", "", "draw every octave of a range in one row, e.g. 2:5")
	rootCmd.AddCommand(drawCmd)
}

var drawCmd = &cobra.Command{
	Use:   "draw [OCTAVE...]",
	Short: "Draws the keyboard in the terminal",
	Long:  `Draws the given octaves side by side, or the full five row keyboard when none are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := keyboard.DefaultRows
		if len(args) > 0 {
			var octaves []int
			for _, arg := range args {
				o, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("octave must be an integer: %w", err)
				}
				octaves = append(octaves, o)
			}
			rows = [][]int{octaves}
		}

		cfg := keyConfig(constants.GetKeyWidth())
		t := render.NewTerminal()
		t.CellWidth, _ = cmd.Flags().GetInt("cell")
		if t.CellWidth < 2 {
			return fmt.Errorf("cell must be at least 2, got %v", t.CellWidth)
		}

		board := keyboard.Board(rows, cfg)
		if span, _ := cmd.Flags().GetString("span"); span != "" {
			row, err := parseSpan(span, cfg)
			if err != nil {
				return err
			}
			board = []keyboard.Row{row}
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Board(board))
		return nil
	},
}

func parseSpan(span string, cfg keyboard.Config) (keyboard.Row, error) {
	from, to, ok := strings.Cut(span, ":")
	first, err1 := strconv.Atoi(from)
	last, err2 := strconv.Atoi(to)
	if !ok || err1 != nil || err2 != nil || last < first {
		return keyboard.Row{}, fmt.Errorf("span must look like FIRST:LAST, got %q", span)
	}
	return keyboard.Span(first, last, cfg), nil
}
