package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tcg/internal/config"
	"github.com/katalvlaran/tcg/language"
	"github.com/katalvlaran/tcg/operator"
)

var (
	// Global flags
	verbose    bool
	configPath string
	seed       int64

	// Set up by PersistentPreRunE
	logger *zap.Logger
	cfg    *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tcg",
	Short: "tcg - trajectory composer for the 3x3 signalling grid",
	Long: `tcg enumerates the trajectories an agent can walk on a 3x3 grid to
signal a goal position to an observer.

A language pairs a location operator with an orientation operator and a
signal order. Each trajectory walks a direct route to the first signal,
a direct route to the second, and a direct route to the finish.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	} else {
		cfg = config.Default()
		if err = cfg.ApplyEnv(); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("seed") {
		s := seed
		cfg.Seed = &s
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	if logger, err = cfg.Logger(verbose); err != nil {
		return err
	}
	logger.Debug("configuration loaded", zap.String("path", configPath))
	return nil
}

// catalog returns the builtin operators with configured restrictions.
func catalog() (*operator.Catalog, error) {
	return cfg.Catalog(operator.Builtins())
}

// sampleLanguage draws a language from the configured pools.
func sampleLanguage(cat *operator.Catalog) (language.Language, error) {
	loc, orient, err := cfg.Pools(cat)
	if err != nil {
		return language.Language{}, err
	}
	opts, err := cfg.LanguageOptions()
	if err != nil {
		return language.Language{}, err
	}
	opts = append(opts, language.WithLogger(logger))
	return language.New(loc, orient, opts...)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed for language sampling (overrides config)")

	rootCmd.AddCommand(operatorsCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(languageCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
