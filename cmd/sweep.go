package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"frameshift/sieve"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep <start> <stop>",
	Short: "Measure parameter effects over a range",
	Long: `Counts primes in [start, stop] under a grid of curvature coefficients and
density boost factors, printing timing and count tables. Because the
residue filter shields every prime coprime to 30 from the density test,
counts are expected to stay constant across the grid; a drift would point
at a broken filter.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, stop, err := parseRange(args)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		setupLogger(cfg.Output)
		base := effectiveParams(cfg)

		fmt.Printf("Parameter sweep on range [%d, %d]\n\n", start, stop)

		fmt.Println("Curvature coefficient k:")
		fmt.Println("k     | Time (s)  | Primes")
		fmt.Println("------|-----------|-------")
		for _, k := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
			count, elapsed, err := timedCount(start, stop, base.With(k, base.FrameCount, base.DensityBoost))
			if err != nil {
				return err
			}
			fmt.Printf("%.1f   | %9.6f | %d\n", k, elapsed.Seconds(), count)
		}

		phi := sieve.GoldenRatio
		boosts := []float64{1.0, phi, phi * phi, 2 * phi}
		names := []string{"none", "phi", "phi^2", "2*phi"}

		fmt.Println("\nDensity boost factor:")
		fmt.Println("Factor | Time (s)  | Primes")
		fmt.Println("-------|-----------|-------")
		for i, boost := range boosts {
			count, elapsed, err := timedCount(start, stop, base.With(base.CurvatureK, base.FrameCount, boost))
			if err != nil {
				return err
			}
			fmt.Printf("%-6s | %9.6f | %d\n", names[i], elapsed.Seconds(), count)
		}

		return nil
	},
}

func timedCount(start, stop uint64, params sieve.Params) (uint64, time.Duration, error) {
	begin := time.Now()

	gen, err := sieve.NewGeneratorWithParams(start, stop, params)
	if err != nil {
		return 0, 0, err
	}
	defer gen.Close()

	var count uint64
	for gen.Next() != 0 {
		count++
	}
	return count, time.Since(begin), nil
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}
