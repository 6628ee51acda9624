package main

import (
	"fmt"

	"github.com/go-leo/design-pattern-demo/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by all sub-commands.
type app struct {
	// flags
	configPath string
	output     string
	verbose    bool

	cfg        *config.Config
	logger     *zap.Logger
	logOptions []zap.Option
}

// newRootCmd builds the command tree. logOptions are applied to the logger built for each run.
func newRootCmd(logOptions ...zap.Option) *cobra.Command {
	a := &app{logger: zap.NewNop(), logOptions: logOptions}
	rootCmd := &cobra.Command{
		Use:   "patterns",
		Short: "Run the Strategy, Factory Method and Facade demos",
		Long: `patterns runs small demonstrations of three design patterns:

  strategy  reorder a list with an interchangeable algorithm
  factory   let a creator's factory method pick the product
  facade    drive two subsystems through one entry point`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newStrategyCmd(a),
		newFactoryCmd(a),
		newFacadeCmd(a),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	zapConfig := zap.NewProductionConfig()
	if a.verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zapConfig.Build(a.logOptions...)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = a.output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.String("output", cfg.Output))
	return nil
}
