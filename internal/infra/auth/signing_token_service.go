// Package auth provides the signing-link token implementation.
package auth

import (
	"time"

	"fitsaga/config"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const signingPurpose = "contract_sign"

// jwtSigningTokenService issues HS256 tokens bound to a single contract.
type jwtSigningTokenService struct {
	secret []byte
}

// NewSigningTokenService is the constructor for jwtSigningTokenService.
// An empty contracts.signingSecret yields a disabled service whose links carry no token.
func NewSigningTokenService(cfg *config.Config) service.SigningTokenService {
	var secret []byte
	if cfg.Contracts != nil && cfg.Contracts.SigningSecret != "" {
		secret = []byte(cfg.Contracts.SigningSecret)
	}

	return &jwtSigningTokenService{secret: secret}
}

func (s *jwtSigningTokenService) Enabled() bool {
	return len(s.secret) > 0
}

func (s *jwtSigningTokenService) IssueToken(contractID string, expiresAt time.Time) (string, error) {
	if !s.Enabled() {
		return "", nil
	}

	claims := jwt.MapClaims{
		"sub":     contractID,
		"purpose": signingPurpose,
		"iat":     time.Now().Unix(),
		"exp":     expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtSigningTokenService) VerifyToken(token, contractID string) error {
	if !s.Enabled() {
		return nil
	}
	if token == "" {
		return service.ErrInvalidSigningToken
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return errors.Join(service.ErrInvalidSigningToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return service.ErrInvalidSigningToken
	}
	if sub, _ := claims.GetSubject(); sub != contractID {
		return service.ErrInvalidSigningToken
	}
	if purpose, _ := claims["purpose"].(string); purpose != signingPurpose {
		return service.ErrInvalidSigningToken
	}

	return nil
}
