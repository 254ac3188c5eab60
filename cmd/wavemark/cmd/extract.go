package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	wavemark "github.com/yyyoichi/wavemark"
)

var (
	extractCarrierPath string
	extractOutPath     string
	extractStrict      bool
)

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Recover the payload hidden in an embedded WAV carrier",
	RunE: func(cmd *cobra.Command, args []string) error {
		carrier, err := os.ReadFile(extractCarrierPath)
		if err != nil {
			return fmt.Errorf("read carrier: %w", err)
		}

		opts := []wavemark.Option{}
		if extractStrict {
			opts = append(opts, wavemark.WithStrictCarrier())
		}

		payload, err := wavemark.Extract(cmd.Context(), carrier, opts...)
		if err != nil {
			return err
		}
		if err := os.WriteFile(extractOutPath, payload, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Infow("extracted payload",
			"carrier", extractCarrierPath,
			"payloadBytes", len(payload),
			"out", extractOutPath,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractCarrierPath, "carrier", "c", "", "embedded WAV path (required)")
	extractCmd.Flags().StringVarP(&extractOutPath, "out", "o", "", "recovered payload path (required)")
	extractCmd.Flags().BoolVar(&extractStrict, "strict", false, "verify the carrier is canonical PCM 16-bit WAV first")
	_ = extractCmd.MarkFlagRequired("carrier")
	_ = extractCmd.MarkFlagRequired("out")
}
