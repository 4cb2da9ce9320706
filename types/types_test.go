package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	base := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "unclassified", err: base, want: KindUpstreamFailure},
		{name: "invalid credential", err: InvalidCredential(base), want: KindInvalidCredential},
		{name: "upstream failure", err: UpstreamFailure(base), want: KindUpstreamFailure},
		{name: "wrapped invalid credential", err: fmt.Errorf("verify: %w", InvalidCredential(base)), want: KindInvalidCredential},
		{name: "upstream wrapping invalid", err: UpstreamFailure(InvalidCredential(base)), want: KindUpstreamFailure},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoginErrorMessage(t *testing.T) {
	t.Parallel()

	err := InvalidCredentialf("token expired at %d", 42)
	if got, want := err.Error(), "token expired at 42"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	empty := &LoginError{Kind: KindInvalidCredential}
	if got, want := empty.Error(), "invalid_credential"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestClaims(t *testing.T) {
	t.Parallel()

	c := Claims{"sub": "U123", "email": "u@example.com", "exp": float64(10)}
	if got := c.Subject(); got != "U123" {
		t.Errorf("Subject() = %q, want %q", got, "U123")
	}
	if got := c.Email(); got != "u@example.com" {
		t.Errorf("Email() = %q, want %q", got, "u@example.com")
	}

	if got := (Claims{"sub": 12}).Subject(); got != "" {
		t.Errorf("Subject() with non-string sub = %q, want empty", got)
	}
}
