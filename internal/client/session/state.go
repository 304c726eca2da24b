// Package session owns the client's authentication state: the persisted
// token and role slots, the tagged-union view of them, and the auth-changed
// broadcast that keeps independent components in sync.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cybershield/cybershield-cli/internal/client/models"
)

// State is either Anonymous or Authenticated. Consumers switch on the
// concrete type instead of re-deriving "is a token present" checks.
type State interface {
	isState()
}

type Anonymous struct{}

type Authenticated struct {
	Role models.Role

	// ExpiresAt is peeked from the token's exp claim without verification
	// and is for display only. Zero when the token is not a parsable JWT.
	ExpiresAt time.Time
}

func (Anonymous) isState()     {}
func (Authenticated) isState() {}

// tokenExpiry extracts the exp claim without validating the signature.
// The token stays opaque for all decisions; this feeds the status display.
func tokenExpiry(token string) time.Time {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
