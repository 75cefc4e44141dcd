package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bobycv06fpm/news-credibility/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "newsprep",
	Short: "Prepares labeled news credibility datasets",
	Long: `newsprep reads unreliable, credible, validation and leak news corpora,
labels every article as credible (1.0) or unreliable (0.0) and splits them
into deterministic train, test, validation and leak check tables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadDotEnv()

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		zapConfig := zap.NewProductionConfig()

		level, levelErr := zapcore.ParseLevel(cfg.Logging.Level)
		if levelErr != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, levelErr)
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zapConfig.Level = zap.NewAtomicLevelAt(level)

		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var (
	outDir     string
	sqlitePath string
	weights    []float64
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Extract, label and split all configured sources",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

var schemaCmd = &cobra.Command{
	Use:   "schema [path]",
	Short: "Print the schema inferred for a JSON source",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchema,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "newsprep.yaml", "path to the yaml config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	buildCmd.Flags().StringVar(&outDir, "out", "", "write tables as lz4 json lines under this directory")
	buildCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "export tables into this sqlite database")
	buildCmd.Flags().Float64SliceVar(&weights, "weights", nil, "train/test split weights, e.g. 0.8,0.2")

	rootCmd.AddCommand(buildCmd, schemaCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.Red("newsprep: %s", err.Error())
		os.Exit(1)
	}
}
