package services

import (
	"context"
	"errors"
	"strings"

	"github.com/cybershield/cybershield-cli/internal/client/client"
	"github.com/cybershield/cybershield-cli/internal/client/models"
	"github.com/cybershield/cybershield-cli/internal/client/quota"
	"github.com/cybershield/cybershield-cli/internal/client/session"
	"github.com/cybershield/cybershield-cli/internal/common"
)

// ScanState is one step of a submission. Every Scan call records the states
// it passed through in Outcome.Transitions, which makes the single-retry
// bound checkable instead of convention-enforced.
type ScanState string

const (
	StateChecking        ScanState = "checking"
	StateBlocked         ScanState = "blocked"
	StateSubmittingAuth  ScanState = "submitting-authenticated"
	StateDegradedRetry   ScanState = "degraded-retry"
	StateSubmittingGuest ScanState = "submitting-guest"
	StateSucceeded       ScanState = "succeeded"
	StateFailed          ScanState = "failed"
)

// ScanMode is the backend path that produced the result.
type ScanMode string

const (
	ModeAuthenticated ScanMode = "authenticated"
	ModeGuest         ScanMode = "guest"
)

// Outcome is the record of one submission: the result (on success), the
// path that produced it and the full transition trail.
type Outcome struct {
	Result      *models.ScanResult
	Mode        ScanMode
	Transitions []ScanState
}

func (o *Outcome) push(s ScanState) {
	o.Transitions = append(o.Transitions, s)
}

// ScanService runs one URL classification end to end: quota check, path
// selection, the bounded demote-and-retry on 401, and quota accounting.
type ScanService interface {
	Scan(ctx context.Context, rawURL string) (*Outcome, error)
}

type scanService struct {
	client   client.Client
	sessions *session.Manager
	quota    *quota.Tracker

	// refreshHistory runs after an authenticated success. May be nil; its
	// failures never fail the scan.
	refreshHistory func(ctx context.Context)
}

func NewScanService(c client.Client, sessions *session.Manager, tracker *quota.Tracker, refreshHistory func(ctx context.Context)) ScanService {
	return &scanService{client: c, sessions: sessions, quota: tracker, refreshHistory: refreshHistory}
}

// Scan submits the URL. Error cases:
//   - common.ErrEmptyURL: blank input, nothing happened.
//   - common.ErrScanLimitReached: anonymous quota exhausted, no request made.
//   - common.ErrSessionExpired: token rejected with no quota to fall back on;
//     the dead token has been purged.
//   - anything else: the attempt failed; quota and session are as they were
//     before the call (except the 401 token purge, see above).
//
// The quota counter moves only after a guest response has actually arrived:
// never before the request, never on failure, never for authenticated scans.
func (s *scanService) Scan(ctx context.Context, rawURL string) (*Outcome, error) {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		return nil, common.ErrEmptyURL
	}

	out := &Outcome{}
	out.push(StateChecking)

	if !s.quota.CanScan() {
		out.push(StateBlocked)
		return out, common.ErrScanLimitReached
	}

	st, err := s.sessions.Current(ctx)
	if err != nil {
		out.push(StateFailed)
		return out, err
	}

	if _, ok := st.(session.Authenticated); ok {
		out.push(StateSubmittingAuth)

		res, err := s.client.Predict(ctx, url, true)
		if err == nil {
			out.Result = res
			out.Mode = ModeAuthenticated
			out.push(StateSucceeded)
			if s.refreshHistory != nil {
				s.refreshHistory(ctx)
			}
			return out, nil
		}

		if !errors.Is(err, client.ErrUnauthorized) {
			out.push(StateFailed)
			return out, err
		}

		// The server rejected the token, so it is dead: purge it and
		// broadcast before anything re-reads auth state.
		if cerr := s.sessions.Clear(ctx); cerr != nil {
			out.push(StateFailed)
			return out, cerr
		}

		if n, _ := s.quota.Remaining(); n == 0 {
			out.push(StateFailed)
			return out, common.ErrSessionExpired
		}
		out.push(StateDegradedRetry)
	}

	// Guest path, reached directly when anonymous or exactly once after a
	// demotion. A failure here is terminal; authenticated mode is never
	// re-attempted.
	out.push(StateSubmittingGuest)

	res, err := s.client.Predict(ctx, url, false)
	if err != nil {
		out.push(StateFailed)
		return out, err
	}

	out.Result = res
	out.Mode = ModeGuest
	if err := s.quota.RecordScanUsed(ctx); err != nil {
		// the classification arrived but could not be accounted for; the
		// trail still has to end in a terminal state
		out.push(StateFailed)
		return out, err
	}
	out.push(StateSucceeded)
	return out, nil
}
