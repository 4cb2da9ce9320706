package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Leugard/daytogether-auth/api"
	"github.com/Leugard/daytogether-auth/metrics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the login exchange HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Addr()
		if serveAddr != "" {
			addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Clients are built once and shared read-only by all requests.
		log.Info().Str("issuer_mode", cfg.IssuerMode).Msg("initializing identity clients")
		verifier, err := buildVerifier(ctx, cfg)
		if err != nil {
			return fmt.Errorf("building verifier: %w", err)
		}
		issuer, err := buildIssuer(ctx, cfg)
		if err != nil {
			return fmt.Errorf("building issuer: %w", err)
		}

		server := api.NewAPIServer(api.Options{
			Addr:               addr,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			ShutdownTimeout:    cfg.ShutdownTimeout,
		}, verifier, issuer, metrics.New())

		if err := server.Run(ctx); err != nil {
			return err
		}
		log.Info().Msg("server exited")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "address to listen on (default :$PORT)")
}
