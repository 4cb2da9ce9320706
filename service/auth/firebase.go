package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	firebaseAuth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type FirebaseConfig struct {
	ProjectID string
	// ServiceAccountID enables remote signing through the IAM API when no
	// private key is available locally.
	ServiceAccountID string
	CredentialsFile  string
}

// FirebaseIssuer mints custom tokens with the Firebase Admin SDK.
type FirebaseIssuer struct {
	client *firebaseAuth.Client
}

// NewFirebaseIssuer initializes the Firebase app once. Without a credentials file the SDK
// falls back to Application Default Credentials.
func NewFirebaseIssuer(ctx context.Context, cfg FirebaseConfig, opts ...option.ClientOption) (*FirebaseIssuer, error) {
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:        cfg.ProjectID,
		ServiceAccountID: cfg.ServiceAccountID,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}

	return &FirebaseIssuer{client: client}, nil
}

func (f *FirebaseIssuer) CustomToken(ctx context.Context, uid string) (string, error) {
	token, err := f.client.CustomToken(ctx, uid)
	if err != nil {
		return "", fmt.Errorf("firebase custom token: %w", err)
	}
	return token, nil
}
