package main

import (
	"context"
	"fmt"

	"github.com/Leugard/daytogether-auth/config"
	"github.com/Leugard/daytogether-auth/service/auth"
	"github.com/Leugard/daytogether-auth/types"
	"github.com/rs/zerolog/log"
)

func buildVerifier(ctx context.Context, cfg config.Config) (types.IdentityVerifier, error) {
	v, err := auth.NewGoogleVerifier(ctx, cfg.GoogleClientIDs)
	if err != nil {
		return nil, err
	}
	if len(cfg.GoogleClientIDs) == 0 {
		log.Warn().Msg("GOOGLE_CLIENT_IDS is empty; ID tokens for any Google client will be accepted")
	}
	return v, nil
}

func buildIssuer(ctx context.Context, cfg config.Config) (types.TokenIssuer, error) {
	switch cfg.IssuerMode {
	case config.IssuerServiceAccount:
		return auth.NewServiceAccountIssuerFromFile(cfg.GoogleApplicationCredentials)
	case config.IssuerFirebase:
		return auth.NewFirebaseIssuer(ctx, auth.FirebaseConfig{
			ProjectID:        cfg.FirebaseProjectID,
			ServiceAccountID: cfg.FirebaseServiceAccountID,
			CredentialsFile:  cfg.GoogleApplicationCredentials,
		})
	default:
		return nil, fmt.Errorf("unknown issuer mode %q", cfg.IssuerMode)
	}
}
