package types

import (
	"context"
	"errors"
	"fmt"
)

// IdentityVerifier checks a third-party ID token and returns its verified claims.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (Claims, error)
}

// TokenIssuer mints a custom token bound to uid.
type TokenIssuer interface {
	CustomToken(ctx context.Context, uid string) (string, error)
}

type TokenRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type TokenResponse struct {
	CustomToken string `json:"custom_token"`
}

// Claims is the decoded payload of a verified ID token.
type Claims map[string]any

func (c Claims) Subject() string {
	sub, _ := c["sub"].(string)
	return sub
}

func (c Claims) Email() string {
	email, _ := c["email"].(string)
	return email
}

type VerifiedIdentity struct {
	UID   string
	Email string
}

type ErrorKind int

const (
	KindUpstreamFailure ErrorKind = iota
	KindInvalidCredential
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidCredential:
		return "invalid_credential"
	default:
		return "upstream_failure"
	}
}

// LoginError classifies a failure into the client-caused or upstream bucket.
type LoginError struct {
	Kind ErrorKind
	Err  error
}

func (e *LoginError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

func InvalidCredential(err error) error {
	return &LoginError{Kind: KindInvalidCredential, Err: err}
}

func UpstreamFailure(err error) error {
	return &LoginError{Kind: KindUpstreamFailure, Err: err}
}

// InvalidCredentialf is shorthand for InvalidCredential(fmt.Errorf(...)).
func InvalidCredentialf(format string, args ...any) error {
	return InvalidCredential(fmt.Errorf(format, args...))
}

// KindOf returns the kind of the outermost LoginError in err's chain.
// Unclassified errors are upstream failures.
func KindOf(err error) ErrorKind {
	var le *LoginError
	if errors.As(err, &le) {
		return le.Kind
	}
	return KindUpstreamFailure
}
