package client

import (
	"context"

	"github.com/cybershield/cybershield-cli/internal/client/models"
)

type Client interface {
	Close() error

	// Register creates an account and returns the new user id.
	Register(ctx context.Context, email, username, password string) (string, error)

	// Login exchanges credentials for a session token and role.
	Login(ctx context.Context, email, password string) (token string, role models.Role, err error)

	// Predict classifies a URL. When authenticated is true the stored
	// bearer token is attached; otherwise the request goes out without
	// credentials (guest scan).
	Predict(ctx context.Context, url string, authenticated bool) (*models.ScanResult, error)

	// History returns the caller's prior scans. Authenticated only.
	History(ctx context.Context) ([]models.HistoryRecord, error)

	// Ping checks server liveness.
	Ping(ctx context.Context) error
}
