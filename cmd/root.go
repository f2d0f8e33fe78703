// Package cmd wires the frameshift command line interface.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"frameshift/internal/config"
	"frameshift/sieve"
)

var rootCmd = &cobra.Command{
	Use:   "frameshift",
	Short: "Experimental frame shift residue prime generator",
	Long: `frameshift generates and counts primes using the frame shift residue
method: a bounded sieve with residue-class filtering (mod 30) and a
golden-ratio density heuristic, tunable through a curvature coefficient,
a frame count hint, and a density boost factor.

The method is a research vehicle and is deliberately slower than a
production sieve; the bench subcommand quantifies exactly how much.`,
	SilenceUsage: true,
}

// Global flags.
var (
	configPath   string
	curvatureK   float64
	frameCount   uint32
	densityBoost float64
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "frameshift.yaml", "Configuration file path")
	rootCmd.PersistentFlags().Float64Var(&curvatureK, "curvature", 0, "Curvature coefficient k, range (0, 1] (0 = use config)")
	rootCmd.PersistentFlags().Uint32Var(&frameCount, "frames", 0, "Frame count hint, 0 = adaptive")
	rootCmd.PersistentFlags().Float64Var(&densityBoost, "boost", 0, "Density boost factor, must be positive (0 = use config)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger(cfg config.OutputConfig) *logrus.Logger {
	logger := logrus.New()

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	switch cfg.LogLevel {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "info":
		logger.SetLevel(logrus.InfoLevel)
	case "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
	if verbose || cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}

// loadConfig reads the configured file, falling back to (and persisting)
// the defaults when it does not exist.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}

		cfg = config.Default()
		if saveErr := cfg.Save(configPath); saveErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save default config: %v\n", saveErr)
		}
	}
	return cfg, nil
}

// effectiveParams folds config values and flag overrides over the
// defaults. Invalid values fall out silently, per the setter contract.
func effectiveParams(cfg *config.Config) sieve.Params {
	p := cfg.Sieve.Params()

	// Zero is a valid frame count (adaptive), so only an explicit flag
	// overrides the config value. Curvature and boost treat zero as
	// invalid, which With ignores on its own.
	fc := p.FrameCount
	if rootCmd.PersistentFlags().Changed("frames") {
		fc = frameCount
	}

	return p.With(curvatureK, fc, densityBoost)
}

func parseRange(args []string) (start, stop uint64, err error) {
	start, err = strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start %q: %w", args[0], err)
	}
	stop, err = strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid stop %q: %w", args[1], err)
	}
	return start, stop, nil
}
