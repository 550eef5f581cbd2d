package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jsphweid/pianoratio/midi"
	"github.com/jsphweid/pianoratio/press"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
)

func init() {
	rootCmd.AddCommand(listenCmd)
	rootCmd.AddCommand(portsCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen [PORT]",
	Short: "Prints the ratio of keys played on a midi keyboard",
	Long:  `Listens to a midi input port (the first one by default) and prints the ratio of every key played.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer gomidi.CloseDriver()

		var name string
		if len(args) == 1 {
			name = args[0]
		}
		in, err := midi.FindInPort(name)
		if err != nil {
			return fmt.Errorf("can't find midi input: %w", err)
		}

		out := cmd.OutOrStdout()
		stop, err := midi.Listen(in, func(ratio float64) {
			fmt.Fprintln(out, press.Format(ratio))
		})
		if err != nil {
			return err
		}
		defer stop()

		fmt.Fprintf(out, "Listening to %v, ctrl-c to stop\n", in)
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer cancel()
		<-ctx.Done()
		return nil
	},
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "Lists midi input ports",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		defer gomidi.CloseDriver()
		for i, name := range midi.InPorts() {
			fmt.Fprintf(cmd.OutOrStdout(), "%v: %v\n", i, name)
		}
	},
}
