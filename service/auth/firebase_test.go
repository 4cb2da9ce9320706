package auth

import (
	"context"
	"testing"

	"google.golang.org/api/option"
)

func TestFirebaseIssuerCustomToken(t *testing.T) {
	t.Parallel()

	key := mustRSAKey(t)
	issuer, err := NewFirebaseIssuer(context.Background(), FirebaseConfig{ProjectID: "demo-project"},
		option.WithCredentialsJSON(serviceAccountJSON(t, key)))
	if err != nil {
		t.Fatalf("NewFirebaseIssuer() error = %v", err)
	}

	token, err := issuer.CustomToken(context.Background(), "U123")
	if err != nil {
		t.Fatalf("CustomToken() error = %v", err)
	}

	claims, err := ParseCustomToken(token, &key.PublicKey)
	if err != nil {
		t.Fatalf("ParseCustomToken() error = %v", err)
	}
	if claims.UID != "U123" {
		t.Errorf("uid = %q, want %q", claims.UID, "U123")
	}
	if claims.Issuer != testServiceAccountEmail {
		t.Errorf("iss = %q, want %q", claims.Issuer, testServiceAccountEmail)
	}
}

func TestFirebaseIssuerRejectsEmptyUID(t *testing.T) {
	t.Parallel()

	issuer, err := NewFirebaseIssuer(context.Background(), FirebaseConfig{ProjectID: "demo-project"},
		option.WithCredentialsJSON(serviceAccountJSON(t, mustRSAKey(t))))
	if err != nil {
		t.Fatalf("NewFirebaseIssuer() error = %v", err)
	}

	if _, err := issuer.CustomToken(context.Background(), ""); err == nil {
		t.Error("CustomToken(\"\") error = nil, want error")
	}
}
