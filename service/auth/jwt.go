package auth

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// FirebaseAudience is the audience Firebase Auth expects on custom tokens.
const FirebaseAudience = "https://identitytoolkit.googleapis.com/google.identity.identitytoolkit.v1.IdentityToolkit"

const (
	customTokenTTL = time.Hour
	maxUIDLength   = 128
)

// CustomClaims is the payload of a Firebase custom token. Audience shadows the
// embedded registered claim so "aud" is encoded as a single string.
type CustomClaims struct {
	UID      string `json:"uid"`
	Audience string `json:"aud"`
	jwt.RegisteredClaims
}

func (c CustomClaims) GetAudience() (jwt.ClaimStrings, error) {
	return jwt.ClaimStrings{c.Audience}, nil
}

type serviceAccountFile struct {
	ClientEmail  string `json:"client_email"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
}

// ServiceAccountIssuer signs Firebase custom tokens locally with a service-account key.
type ServiceAccountIssuer struct {
	email string
	keyID string
	key   *rsa.PrivateKey
	now   func() time.Time
}

func NewServiceAccountIssuer(credentialsJSON []byte) (*ServiceAccountIssuer, error) {
	var sa serviceAccountFile
	if err := json.Unmarshal(credentialsJSON, &sa); err != nil {
		return nil, fmt.Errorf("parsing service account credentials: %w", err)
	}
	if sa.ClientEmail == "" {
		return nil, fmt.Errorf("service account credentials have no client_email")
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(sa.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("parsing service account private key: %w", err)
	}

	return &ServiceAccountIssuer{
		email: sa.ClientEmail,
		keyID: sa.PrivateKeyID,
		key:   key,
		now:   time.Now,
	}, nil
}

func NewServiceAccountIssuerFromFile(path string) (*ServiceAccountIssuer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading service account credentials: %w", err)
	}
	return NewServiceAccountIssuer(data)
}

func (s *ServiceAccountIssuer) CustomToken(_ context.Context, uid string) (string, error) {
	if uid == "" {
		return "", fmt.Errorf("uid must be non-empty")
	}
	if len(uid) > maxUIDLength {
		return "", fmt.Errorf("uid must not be longer than %d characters", maxUIDLength)
	}

	iat := s.now()
	claims := &CustomClaims{
		UID:      uid,
		Audience: FirebaseAudience,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.email,
			Subject:   s.email,
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(iat.Add(customTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if s.keyID != "" {
		token.Header["kid"] = s.keyID
	}

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("signing custom token: %w", err)
	}
	return signed, nil
}

// ParseCustomToken validates a custom token signed by key and returns its claims.
func ParseCustomToken(token string, key *rsa.PublicKey) (*CustomClaims, error) {
	claims := &CustomClaims{}

	t, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(FirebaseAudience),
		jwt.WithIssuedAt(),
	)
	if err != nil || !t.Valid {
		return nil, fmt.Errorf("invalid custom token: %w", err)
	}

	return claims, nil
}
