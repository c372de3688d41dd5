package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newFlagCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "timedrive",
		Short:         "Drive a timerunner timeline described by a YAML config",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetOut(os.Stdout)
	configureFlags(cmd.Flags())
	return cmd
}

func configureFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "Path to a YAML timeline description")
	flags.String("session-id", "", "Session identifier tagging log lines and emitted events (generated if empty)")
	flags.Duration("tick-rate", 0, "Fixed delta per frame (0 uses the config file's tick_rate)")
	flags.Int("frames", 0, "Number of frames to run (0 uses the config file's frames)")
	flags.Bool("quiet", false, "Suppress the YAML Ended records written to stdout")
}
