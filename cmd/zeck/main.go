// Command zeck converts and combines numbers in Zeckendorf form.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// logger is built in PersistentPreRunE.
	logger *zap.Logger

	verbose bool
	decimal bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zeck",
		Short: "Zeckendorf (Fibonacci) number toolkit",
		Long: `zeck works with natural numbers written as sums of non-adjacent
Fibonacci numbers. Operands are bit strings (most significant first,
e.g. 1001 = 5 + 1) unless --decimal is given.

Examples:
  zeck from 100            # 1000010100
  zeck add 1001 10         # 10000
  zeck -d add 6 2          # 8
  zeck encode -d 0 1 2 3   # d9d8`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			// Log lines go to the command's error stream so they stay
			// apart from the numbers written to its output.
			core := zapcore.NewCore(
				zapcore.NewJSONEncoder(config.EncoderConfig),
				zapcore.AddSync(cmd.ErrOrStderr()),
				config.Level,
			)
			logger = zap.New(core, zap.AddCaller())

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&decimal, "decimal", "d", false, "read operands as decimal numbers")

	rootCmd.AddCommand(
		normCmd(),
		fromCmd(),
		binaryCmd("add", "Add two numbers", add),
		binaryCmd("and", "Keep the terms present in both numbers", and),
		binaryCmd("or", "Combine the terms of both numbers", or),
		binaryCmd("xor", "Keep the terms present in exactly one number", xor),
		shlCmd(),
		cmpCmd(),
		encodeCmd(),
		decodeCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
