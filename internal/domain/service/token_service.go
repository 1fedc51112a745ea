package service

import (
	"time"

	"fitsaga/internal/errors"
)

// ErrInvalidSigningToken is returned when a signing-link token is missing, expired or for another contract.
var ErrInvalidSigningToken = errors.New("invalid signing token")

// SigningTokenService issues and checks the tokens embedded in contract signing links.
type SigningTokenService interface {
	// Enabled reports whether signing links carry tokens.
	Enabled() bool

	// IssueToken returns a token that authorizes signing the contract until expiresAt.
	IssueToken(contractID string, expiresAt time.Time) (string, error)

	// VerifyToken checks that token authorizes signing the contract.
	VerifyToken(token, contractID string) error
}
