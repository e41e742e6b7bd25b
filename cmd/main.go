package main

import (
	"fmt"
	"os"

	"numinterp/internal/config"
	"numinterp/internal/service"
	"numinterp/internal/service/ambiguity"
	"numinterp/internal/service/phone"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "1.0.0"

var (
	// Global flags
	configPath string
	logLevel   string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "numinterp",
	Short: "List every literal reading of a spoken number and flag phone numbers",
	Long: `numinterp expands digit groups transcribed from speech ("four eighty seven"
as "487") into every number a listener could have meant, then flags the readings
that look like phone numbers.

Run without arguments to start the interactive prompt.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(configPath, cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}

		logger, err = newLogger(cfg.App)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("Configuration loaded", zap.Any("config", cfg))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "numinterp.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides configuration)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(interpretCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(app config.AppConfig) (*zap.Logger, error) {
	cfgZap := zap.NewProductionConfig()

	level := app.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if verbose {
		level = "debug"
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfgZap.Level.SetLevel(parsed)

	if len(app.LogOutputs) > 0 {
		cfgZap.OutputPaths = app.LogOutputs
	}
	return cfgZap.Build()
}

// newInterpretService wires the engine and the configured validator.
func newInterpretService(cfg *config.Config, logger *zap.Logger) (*service.InterpretService, error) {
	generator := ambiguity.NewGenerator(ambiguity.Limits{
		MaxTokens:          cfg.Limits.MaxTokens,
		MaxDigitsPerToken:  cfg.Limits.MaxDigitsPerToken,
		MaxCandidates:      cfg.Limits.MaxCandidates,
		MaxInterpretations: cfg.Limits.MaxInterpretations,
	}, logger)

	rules := make([]phone.Rule, 0, len(cfg.Validator.Rules))
	for _, r := range cfg.Validator.Rules {
		rules = append(rules, phone.Rule{Length: r.Length, Prefixes: r.Prefixes})
	}

	registry := phone.NewDefaultRegistry(rules, cfg.Validator.Region, logger)
	validator, err := registry.Get(cfg.Validator.Name)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, registry.Names())
	}

	logger.Debug("Interpret service ready",
		zap.String("validator", validator.Name()),
		zap.Int("max_tokens", cfg.Limits.MaxTokens),
		zap.Int("max_digits_per_token", cfg.Limits.MaxDigitsPerToken),
		zap.Int("max_candidates", cfg.Limits.MaxCandidates),
		zap.Int("max_interpretations", cfg.Limits.MaxInterpretations))

	return service.NewInterpretService(generator, validator, cfg.Validator.Region, cfg.Server.BatchConcurrency, logger), nil
}
