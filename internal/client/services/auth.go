// Package services contains the application services behind the CLI:
// authentication (register, login, logout) and the scan orchestrator.
package services

import (
	"context"

	"github.com/cybershield/cybershield-cli/internal/client/client"
	"github.com/cybershield/cybershield-cli/internal/client/session"
)

// AuthService drives account operations against the API and keeps the
// persisted session slots in sync.
//
// Contract:
//   - Register creates an account; it does not log the user in.
//   - Login authenticates and persists token+role (broadcasting the change).
//   - Logout purges the session slots (broadcasting); the free-scan counter
//     is deliberately untouched.
//
// All methods honor context cancellation.
type AuthService interface {
	Register(ctx context.Context, email, username, password string) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client   client.Client
	sessions *session.Manager
}

func NewAuthService(c client.Client, sessions *session.Manager) AuthService {
	return &authService{client: c, sessions: sessions}
}

func (a *authService) Register(ctx context.Context, email, username, password string) error {
	_, err := a.client.Register(ctx, email, username, password)
	return err
}

func (a *authService) Login(ctx context.Context, email, password string) error {
	token, role, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return a.sessions.Establish(ctx, token, role)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
