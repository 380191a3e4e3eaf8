package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xavierca1/leadflow/internal/config"
)

var (
	logger *zap.Logger
	cfg    config.Config

	verbose      bool
	stateBackend string
	statePath    string
)

var rootCmd = &cobra.Command{
	Use:   "leadctl",
	Short: "leadflow maintenance CLI",
	Long: `leadctl works on the same saved state as the API server.

Stop the server before importing, otherwise its next snapshot overwrites
the change.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if stateBackend != "" {
			cfg.StateBackend = stateBackend
		}
		if statePath != "" {
			cfg.StatePath = statePath
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&stateBackend, "state-backend", "", "file or sqlite (default from STATE_BACKEND)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state-path", "", "snapshot location (default from STATE_PATH)")

	importCmd.Flags().String("text", "", "bulk paste instead of a file")
	renderCmd.Flags().String("profile", "", "message profile id or name")
	renderCmd.Flags().String("lead", "", "lead id")
	renderCmd.Flags().String("client", "", "client id")
	renderCmd.Flags().String("highlight", "", "overrides the bio highlight")
	renderCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(importCmd, statsCmd, dailyCmd, profilesCmd, renderCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
