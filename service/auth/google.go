package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/Leugard/daytogether-auth/types"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

// GoogleVerifier verifies Google-issued ID tokens against Google's published certificates.
type GoogleVerifier struct {
	validator *idtoken.Validator
	audiences []string
}

// NewGoogleVerifier returns a verifier that accepts tokens whose audience is one of audiences.
// An empty audiences list accepts any Google OAuth client.
func NewGoogleVerifier(ctx context.Context, audiences []string, opts ...option.ClientOption) (*GoogleVerifier, error) {
	v, err := idtoken.NewValidator(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating id token validator: %w", err)
	}

	return &GoogleVerifier{validator: v, audiences: audiences}, nil
}

func (g *GoogleVerifier) Verify(ctx context.Context, idToken string) (types.Claims, error) {
	payload, err := g.validator.Validate(ctx, idToken, "")
	if err != nil {
		if isFetchFailure(ctx, err) {
			return nil, types.UpstreamFailure(fmt.Errorf("fetching google certificates: %w", err))
		}
		return nil, types.InvalidCredential(err)
	}

	if !slices.Contains(googleIssuers, payload.Issuer) {
		return nil, types.InvalidCredentialf("wrong issuer %q", payload.Issuer)
	}

	if len(g.audiences) > 0 && !slices.Contains(g.audiences, payload.Audience) {
		return nil, types.InvalidCredentialf("token audience %q is not an accepted client ID", payload.Audience)
	}

	claims := make(types.Claims, len(payload.Claims))
	for k, v := range payload.Claims {
		claims[k] = v
	}
	if _, ok := claims["sub"]; !ok && payload.Subject != "" {
		claims["sub"] = payload.Subject
	}

	return claims, nil
}

// isFetchFailure reports whether err came from retrieving the signing certificates
// rather than from the token itself.
func isFetchFailure(ctx context.Context, err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	if ctx.Err() != nil {
		return true
	}
	return strings.Contains(err.Error(), "unable to retrieve cert")
}
