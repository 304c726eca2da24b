// Package quota meters anonymous scans. Unauthenticated users get
// MaxFreeScans classifications; the counter persists across restarts and is
// ignored, not cleared, while a session exists, so logging out resumes the
// previous count instead of granting a fresh allowance.
package quota

import (
	"context"
	"strconv"
	"sync"

	"github.com/cybershield/cybershield-cli/internal/client/repositories/state"
	"github.com/cybershield/cybershield-cli/internal/client/session"
)

// MaxFreeScans is the number of classifications an anonymous user may run.
const MaxFreeScans = 2

// Tracker answers "is an anonymous scan currently allowed" and "how many
// remain". It caches the counter and auth presence, and re-reads both from
// the store whenever the auth-changed signal fires, so a login, logout or
// 401 demotion elsewhere is reflected without polling.
type Tracker struct {
	mu            sync.Mutex
	store         state.Repository
	sessions      *session.Manager
	count         int
	authenticated bool
}

// NewTracker loads the persisted counter and current auth presence, and
// subscribes to bus for resync. A missing or non-numeric stored counter
// reads as 0.
func NewTracker(ctx context.Context, store state.Repository, sessions *session.Manager, bus *session.Bus) (*Tracker, error) {
	t := &Tracker{store: store, sessions: sessions}
	if err := t.reload(ctx); err != nil {
		return nil, err
	}
	bus.Subscribe(func() {
		// the signal carries no payload; re-read the store, it is ground truth
		_ = t.reload(context.Background())
	})
	return t, nil
}

func (t *Tracker) reload(ctx context.Context) error {
	raw, err := t.store.Get(ctx, state.KeyFreeScanCount)
	if err != nil {
		return err
	}
	st, err := t.sessions.Current(ctx)
	if err != nil {
		return err
	}

	_, authenticated := st.(session.Authenticated)

	t.mu.Lock()
	t.count = parseCount(raw)
	t.authenticated = authenticated
	t.mu.Unlock()
	return nil
}

// CanScan reports whether a scan is currently permitted: always true when
// authenticated, otherwise true while the counter is below MaxFreeScans.
func (t *Tracker) CanScan() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.authenticated || t.count < MaxFreeScans
}

// Remaining returns the scans left. unlimited is true for authenticated
// sessions, in which case n is meaningless. n is never negative.
func (t *Tracker) Remaining() (n int, unlimited bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.authenticated {
		return 0, true
	}
	return max(0, MaxFreeScans-t.count), false
}

// RecordScanUsed increments the persisted counter. Callers must invoke it
// only after a guest scan has actually succeeded; authenticated scans are
// unmetered and must not be recorded.
func (t *Tracker) RecordScanUsed(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.count + 1
	if err := t.store.Set(ctx, state.KeyFreeScanCount, strconv.Itoa(next)); err != nil {
		return err
	}
	t.count = next
	return nil
}

// Reset zeroes the counter and removes it from the store. It is a manual
// maintenance operation; nothing in the scan or auth flow calls it, so a
// logout cannot be used to refarm free scans.
func (t *Tracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.Delete(ctx, state.KeyFreeScanCount); err != nil {
		return err
	}
	t.count = 0
	return nil
}

// parseCount tolerates missing or corrupted stored values: anything that is
// not a non-negative integer reads as 0.
func parseCount(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
