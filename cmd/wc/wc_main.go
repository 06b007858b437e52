package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gitlab.com/yarbelk/slimwc/lib"
	"gitlab.com/yarbelk/slimwc/lib/wc"
)

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Sampling = nil
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	log, err := config.Build()
	if err != nil {
		panic(err)
	}
	return log.Named("wc")
}

// newCommand wires wc.Run into cobra. Flag parsing is left to wc.Parse since
// its rules (clusters, a bare "-" being ignored) are not pflag's.
func newCommand(log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:                "wc [OPTION]... [FILE]...",
		Short:              "Print newline, word, and byte counts for each file",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			stdin := cmd.InOrStdin()
			return wc.Run(args, wc.Env{
				Stdin:           stdin,
				StdinIsTerminal: lib.IsTerminal(stdin),
				Stdout:          cmd.OutOrStdout(),
				Stderr:          cmd.ErrOrStderr(),
				Log:             log,
			})
		},
	}
}

// execute runs cmd with args behind a leading "--", which stops cobra from
// matching an operand against its hidden __complete command. RunE drops it
// again, so a "--" typed by the user still reaches wc.Parse.
func execute(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(append([]string{"--"}, args...))
	return cmd.Execute()
}

func main() {
	log := newLogger()
	err := execute(newCommand(log), os.Args[1:])
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}
