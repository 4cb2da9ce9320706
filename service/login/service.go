package login

import (
	"context"
	"errors"

	"github.com/Leugard/daytogether-auth/types"
	"github.com/rs/zerolog"
)

// Service exchanges a verified third-party ID token for a custom token.
type Service struct {
	verifier types.IdentityVerifier
	issuer   types.TokenIssuer
}

func NewService(verifier types.IdentityVerifier, issuer types.TokenIssuer) *Service {
	return &Service{verifier: verifier, issuer: issuer}
}

// Exchange verifies req.IDToken and mints a custom token for its subject.
// Errors are *types.LoginError values.
func (s *Service) Exchange(ctx context.Context, req types.TokenRequest) (*types.TokenResponse, error) {
	claims, err := s.verifier.Verify(ctx, req.IDToken)
	if err != nil {
		var le *types.LoginError
		if errors.As(err, &le) {
			return nil, err
		}
		return nil, types.UpstreamFailure(err)
	}

	identity := types.VerifiedIdentity{UID: claims.Subject(), Email: claims.Email()}
	if identity.UID == "" {
		return nil, types.InvalidCredentialf("token has no subject")
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("uid", identity.UID).Str("email", identity.Email).Msg("id token verified")

	token, err := s.issuer.CustomToken(ctx, identity.UID)
	if err != nil {
		return nil, types.UpstreamFailure(err)
	}
	if token == "" {
		return nil, types.UpstreamFailure(errors.New("issuer returned an empty custom token"))
	}

	return &types.TokenResponse{CustomToken: token}, nil
}
