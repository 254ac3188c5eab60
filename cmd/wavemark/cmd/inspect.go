package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	wavemark "github.com/yyyoichi/wavemark"
)

var (
	inspectCarrierPath   string
	inspectReferencePath string
)

// inspectCmd represents the inspect command.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Report carrier validity, payload capacity and embedding quality",
	RunE: func(cmd *cobra.Command, args []string) error {
		carrier, err := os.ReadFile(inspectCarrierPath)
		if err != nil {
			return fmt.Errorf("read carrier: %w", err)
		}

		if err := wavemark.VerifyCarrier(carrier); err != nil {
			logger.Warnw("carrier verification failed", "carrier", inspectCarrierPath, "err", err)
		} else {
			logger.Infow("carrier is canonical PCM 16-bit WAV", "carrier", inspectCarrierPath)
		}

		capacity, err := wavemark.Capacity(carrier)
		if err != nil {
			return err
		}
		logger.Infow("carrier capacity",
			"bytes", len(carrier),
			"samples", (len(carrier)-wavemark.HeaderSize)/wavemark.BytesPerSample,
			"payloadCapacityBytes", capacity,
		)

		if inspectReferencePath == "" {
			return nil
		}
		reference, err := os.ReadFile(inspectReferencePath)
		if err != nil {
			return fmt.Errorf("read reference: %w", err)
		}
		psnr, err := wavemark.Quality(reference, carrier)
		if err != nil {
			return err
		}
		logger.Infow("embedding quality", "reference", inspectReferencePath, "psnrDB", psnr)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectCarrierPath, "carrier", "c", "", "WAV path to inspect (required)")
	inspectCmd.Flags().StringVarP(&inspectReferencePath, "reference", "r", "", "original carrier to compare against for PSNR")
	_ = inspectCmd.MarkFlagRequired("carrier")
}
