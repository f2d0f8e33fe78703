package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"frameshift/sieve"
)

var kappaCmd = &cobra.Command{
	Use:   "kappa <n>...",
	Short: "Compute the divisor-curvature metric for each n",
	Long: `Computes kappa(n) = d(n) * ln(n+1) / e^2, where d(n) counts the positive
divisors of n. The metric is an analysis utility of the frame shift method
and is not consumed by the sieving pipeline.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-20s %-12s\n", "n", "kappa(n)")
		for _, arg := range args {
			n, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid n %q: %w", arg, err)
			}
			fmt.Printf("%-20d %-12.6f\n", n, sieve.Kappa(n))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kappaCmd)
}
