package session

import (
	"context"

	"github.com/cybershield/cybershield-cli/internal/client/models"
	"github.com/cybershield/cybershield-cli/internal/client/repositories/state"
)

// Manager is the single writer API for the token and role slots. The
// persistent store is the ground truth: Current always re-reads it, and
// every mutation completes the write before the broadcast goes out.
type Manager struct {
	store state.Repository
	bus   *Bus
}

func NewManager(store state.Repository, bus *Bus) *Manager {
	return &Manager{store: store, bus: bus}
}

// Current reconciles the stored slots into a State value.
func (m *Manager) Current(ctx context.Context) (State, error) {
	token, err := m.store.Get(ctx, state.KeyToken)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return Anonymous{}, nil
	}

	role, err := m.store.Get(ctx, state.KeyUserRole)
	if err != nil {
		return nil, err
	}
	return Authenticated{Role: models.ParseRole(role), ExpiresAt: tokenExpiry(token)}, nil
}

// Token returns the stored session token, "" when anonymous.
func (m *Manager) Token(ctx context.Context) (string, error) {
	return m.store.Get(ctx, state.KeyToken)
}

// Establish persists a fresh token and role, then broadcasts. Called on
// login and registration success.
func (m *Manager) Establish(ctx context.Context, token string, role models.Role) error {
	if err := m.store.Set(ctx, state.KeyToken, token); err != nil {
		return err
	}
	if err := m.store.Set(ctx, state.KeyUserRole, string(role)); err != nil {
		return err
	}
	m.bus.Broadcast()
	return nil
}

// Clear purges the token and role slots in one atomic write, then
// broadcasts. The free-scan counter is left alone: logging out resumes the
// previous anonymous count instead of granting a fresh quota. Called on
// logout and on 401 demotion.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.DeleteMany(ctx, state.KeyToken, state.KeyUserRole); err != nil {
		return err
	}
	m.bus.Broadcast()
	return nil
}
