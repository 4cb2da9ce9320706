package main

import (
	"os"

	"github.com/Leugard/daytogether-auth/config"
	"github.com/Leugard/daytogether-auth/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	cfg       config.Config
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "daytogether-auth",
	Short: "Exchange Google ID tokens for Firebase custom tokens",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat = logFormat
		}
		logging.Init(cfg.LogLevel, cfg.LogFormat, os.Stderr)
		return cfg.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	logging.Init("info", "json", os.Stderr)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "log format (json, console)")

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("execution failed")
	}
}
