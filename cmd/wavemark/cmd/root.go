package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.SugaredLogger
	debug  bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "wavemark",
	Short: "Hide and recover binary payloads in the LSBs of PCM WAV samples",
	Long: `wavemark embeds an arbitrary payload into the least significant bit of
each 16-bit sample of a PCM WAV carrier, and recovers it losslessly.
The output file is byte-for-byte the same length as the carrier and the
amplitude of each sample changes by at most one unit.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		if debug {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, _ := cfg.Build()
		logger = l.Sugar()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}
