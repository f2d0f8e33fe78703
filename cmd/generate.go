package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"frameshift/sieve"
)

var generateLimit int

var generateCmd = &cobra.Command{
	Use:   "generate <start> <stop>",
	Short: "List primes in [start, stop]",
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

		primes := make([]uint64, 0, 64)
		for p := gen.Next(); p != 0; p = gen.Next() {
			primes = append(primes, p)
		}
		elapsed := time.Since(begin)

		fmt.Printf("Found %d primes between %d and %d in %.6f seconds\n",
			len(primes), start, stop, elapsed.Seconds())

		shown := len(primes)
		if generateLimit > 0 && shown > generateLimit {
			shown = generateLimit
		}
		for i := 0; i < shown; i++ {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Print(primes[i])
		}
		if shown > 0 {
			if shown < len(primes) {
				fmt.Printf(" ... (showing first %d)", shown)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&generateLimit, "limit", 20, "Maximum primes to print, 0 = all")
	rootCmd.AddCommand(generateCmd)
}
