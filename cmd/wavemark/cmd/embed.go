package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	wavemark "github.com/yyyoichi/wavemark"
)

var (
	embedCarrierPath string
	embedPayloadPath string
	embedOutPath     string
	embedStrict      bool
	embedWorkers     int
)

// embedCmd represents the embed command.
var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Embed a payload file into a WAV carrier",
	RunE: func(cmd *cobra.Command, args []string) error {
		carrier, err := os.ReadFile(embedCarrierPath)
		if err != nil {
			return fmt.Errorf("read carrier: %w", err)
		}
		payload, err := os.ReadFile(embedPayloadPath)
		if err != nil {
			return fmt.Errorf("read payload: %w", err)
		}

		opts := []wavemark.Option{}
		if embedStrict {
			opts = append(opts, wavemark.WithStrictCarrier())
		}
		if embedWorkers > 0 {
			opts = append(opts, wavemark.WithWorkers(embedWorkers))
		}

		out, err := wavemark.Embed(cmd.Context(), carrier, payload, opts...)
		if err != nil {
			return err
		}
		if err := os.WriteFile(embedOutPath, out, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Infow("embedded payload",
			"carrier", embedCarrierPath,
			"payloadBytes", len(payload),
			"out", embedOutPath,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(embedCmd)

	embedCmd.Flags().StringVarP(&embedCarrierPath, "carrier", "c", "", "carrier WAV path (required)")
	embedCmd.Flags().StringVarP(&embedPayloadPath, "payload", "p", "", "payload file path (required)")
	embedCmd.Flags().StringVarP(&embedOutPath, "out", "o", "", "output WAV path (required)")
	embedCmd.Flags().BoolVar(&embedStrict, "strict", false, "verify the carrier is canonical PCM 16-bit WAV first")
	embedCmd.Flags().IntVar(&embedWorkers, "workers", 0, "embed fan-out (default: GOMAXPROCS)")
	_ = embedCmd.MarkFlagRequired("carrier")
	_ = embedCmd.MarkFlagRequired("payload")
	_ = embedCmd.MarkFlagRequired("out")
}
