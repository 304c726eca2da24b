package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybershield/cybershield-cli/internal/client/models"
	"github.com/cybershield/cybershield-cli/internal/client/quota"
	"github.com/cybershield/cybershield-cli/internal/client/session"
)

// memStore is an in-memory state.Repository. setErr, when non-nil, makes
// every Set fail with it.
type memStore struct {
	mu     sync.Mutex
	m      map[string]string
	setErr error
}

func newMemStore() *memStore {
	return &memStore{m: make(map[string]string)}
}

func (s *memStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m[key], nil
}

func (s *memStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.m[key] = value
	return nil
}

func (s *memStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

func (s *memStore) DeleteMany(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.m, k)
	}
	return nil
}

func (s *memStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = make(map[string]string)
	return nil
}

type predictCall struct {
	url           string
	authenticated bool
}

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	CloseErr error

	RegisterID  string
	RegisterErr error

	LoginToken string
	LoginRole  models.Role
	LoginErr   error

	PredictAuthRes  *models.ScanResult
	PredictAuthErr  error
	PredictGuestRes *models.ScanResult
	PredictGuestErr error

	HistoryRecords []models.HistoryRecord
	HistoryErr     error

	PingErr error

	// recorded arguments
	PredictCalls      []predictCall
	LastLoginEmail    string
	LastLoginPassword string
	LastRegisterEmail string
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Register(ctx context.Context, email, username, password string) (string, error) {
	f.LastRegisterEmail = email
	return f.RegisterID, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, models.Role, error) {
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	return f.LoginToken, f.LoginRole, f.LoginErr
}

func (f *fakeClient) Predict(ctx context.Context, url string, authenticated bool) (*models.ScanResult, error) {
	f.PredictCalls = append(f.PredictCalls, predictCall{url: url, authenticated: authenticated})
	if authenticated {
		return f.PredictAuthRes, f.PredictAuthErr
	}
	return f.PredictGuestRes, f.PredictGuestErr
}

func (f *fakeClient) History(ctx context.Context) ([]models.HistoryRecord, error) {
	return f.HistoryRecords, f.HistoryErr
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

// fixture wires a fake client to real session/quota components over an
// in-memory store.
type fixture struct {
	fc       *fakeClient
	store    *memStore
	bus      *session.Bus
	sessions *session.Manager
	tracker  *quota.Tracker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newMemStore()
	bus := session.NewBus()
	sessions := session.NewManager(store, bus)

	tracker, err := quota.NewTracker(context.Background(), store, sessions, bus)
	require.NoError(t, err)

	return &fixture{
		fc:       &fakeClient{},
		store:    store,
		bus:      bus,
		sessions: sessions,
		tracker:  tracker,
	}
}
