package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/cobra"
)

var (
	genOutPath   string
	genRate      int
	genSeconds   float64
	genFreq      float64
	genAmplitude float64
)

// genCmd represents the gen command.
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a sine-wave PCM 16-bit WAV usable as a carrier",
	RunE: func(cmd *cobra.Command, args []string) error {
		if genAmplitude < 0 || genAmplitude > 1 {
			return fmt.Errorf("amplitude must be in [0,1], got %v", genAmplitude)
		}
		numSamples := int(float64(genRate) * genSeconds)
		data := make([]int, numSamples)
		for i := range data {
			v := genAmplitude * math.Sin(2*math.Pi*genFreq*float64(i)/float64(genRate))
			data[i] = int(v * math.MaxInt16)
		}

		f, err := os.Create(genOutPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()

		enc := wav.NewEncoder(f, genRate, 16, 1, 1)
		buf := &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: 1, SampleRate: genRate},
			Data:           data,
			SourceBitDepth: 16,
		}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("write samples: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("finalize wav: %w", err)
		}
		logger.Infow("generated carrier",
			"out", genOutPath,
			"samples", numSamples,
			"rate", genRate,
			"freq", genFreq,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().StringVarP(&genOutPath, "out", "o", "", "output WAV path (required)")
	genCmd.Flags().IntVar(&genRate, "rate", 44100, "sample rate in Hz")
	genCmd.Flags().Float64Var(&genSeconds, "seconds", 1, "duration in seconds")
	genCmd.Flags().Float64Var(&genFreq, "freq", 440, "sine frequency in Hz")
	genCmd.Flags().Float64Var(&genAmplitude, "amplitude", 0.5, "sine amplitude in [0,1]")
}
