package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/op/go-logging"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/percolation/internal/config"
	"github.com/katalvlaran/percolation/percstats"
)

const loggerModule = "percolate"

var log = logging.MustGetLogger(loggerModule)

// errUsage marks invalid positional arguments.
var errUsage = errors.New("usage: percolate <n> <trials> (both positive integers)")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "percolate <n> <trials>",
		Short: "Estimate the percolation threshold of an n×n grid",
		Long: "percolate opens random sites of an n×n grid until it percolates, repeats this\n" +
			"for the given number of trials, and prints the mean threshold, its standard\n" +
			"deviation and a 95% confidence interval.",
		Args:              validateArgs,
		PersistentPreRunE: initConfig,
		RunE:              runPercolate,
		SilenceErrors:     true,
	}

	cmd.PersistentFlags().String("config", "", "config file (default .percolate.toml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log every trial")
	cmd.Flags().Int64("seed", 0, "RNG seed (0 selects the fixed default)")
	cmd.Flags().Int("workers", 1, "trials run concurrently")
	cmd.Flags().String("format", config.FormatText, "output format: text or toml")

	return cmd
}

// validateArgs requires exactly two positive integers.
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: got %d arguments", errUsage, len(args))
	}
	for _, a := range args {
		if _, err := parsePositive(a); err != nil {
			return err
		}
	}
	return nil
}

func parsePositive(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errUsage, s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %d is not positive", errUsage, v)
	}
	return v, nil
}

func initConfig(cmd *cobra.Command, _ []string) error {
	viper.Reset()

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".percolate")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("PERCOLATE")
	viper.AutomaticEnv()

	for _, key := range []string{"seed", "workers", "format", "verbose"} {
		if err := viper.BindPFlag(key, lookupFlag(cmd, key)); err != nil {
			return err
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing default config is fine; a missing or broken explicit one is not.
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// lookupFlag finds key among local then persistent flags.
func lookupFlag(cmd *cobra.Command, key string) *pflag.Flag {
	if f := cmd.Flags().Lookup(key); f != nil {
		return f
	}
	return cmd.PersistentFlags().Lookup(key)
}

func runPercolate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	n, _ := parsePositive(args[0])
	trials, _ := parsePositive(args[1])

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLogging(cmd.ErrOrStderr(), cfg.Verbose)

	if trials == 1 {
		log.Warning("a single trial has no standard deviation; the interval will be NaN")
	}
	log.Infof("running %d trials on a %dx%d grid (workers=%d seed=%d)", trials, n, n, cfg.Workers, cfg.Seed)

	res, err := percstats.Run(cmd.Context(), n, trials,
		percstats.WithSeed(cfg.Seed),
		percstats.WithWorkers(cfg.Workers),
		percstats.WithOnTrial(func(i int, p float64) {
			log.Debugf("trial %d: threshold %.6f", i, p)
		}),
	)
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), cfg.Format, res)
}

func writeReport(w io.Writer, format string, res *percstats.Result) error {
	if format == config.FormatTOML {
		return toml.NewEncoder(w).Encode(res)
	}

	_, err := fmt.Fprintf(w, "Mean: %v\nStddev: %v\n95%% confidence interval [%v, %v]\n",
		res.Mean, res.Stddev, res.ConfidenceLo, res.ConfidenceHi)
	return err
}

// setupLogging routes the package logger to w at INFO, or DEBUG when verbose.
func setupLogging(w io.Writer, verbose bool) {
	backend := logging.NewLogBackend(w, "", 0)
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{message}`)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))

	level := logging.INFO
	if verbose {
		level = logging.DEBUG
	}
	leveled.SetLevel(level, loggerModule)
	logging.SetBackend(leveled)
}
