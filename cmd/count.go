package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"frameshift/sieve"
)

var countCmd = &cobra.Command{
	Use:   "count <start> <stop>",
	Short: "Count primes in [start, stop]",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, stop, err := parseRange(args)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := setupLogger(cfg.Output)
		params := effectiveParams(cfg)

		logger.Debugf("Parameters: k=%.3f frames=%d boost=%.6f",
			params.CurvatureK, params.FrameCount, params.DensityBoost)

		begin := time.Now()
		gen, err := sieve.NewGeneratorWithParams(start, stop, params)
		if err != nil {
			return err
		}
		defer gen.Close()

		frameSize, frameShift := gen.Frame()
		logger.Debugf("Frame: size=%d shift=%d", frameSize, frameShift)

		var count uint64
		for gen.Next() != 0 {
			count++
		}
		elapsed := time.Since(begin)

		fmt.Printf("Range [%d, %d]: %d primes in %.6f seconds\n",
			start, stop, count, elapsed.Seconds())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
