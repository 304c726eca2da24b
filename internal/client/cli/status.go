package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/cybershield/cybershield-cli/internal/client/session"
)

// Status reports the session, connectivity and quota, re-read from the
// persistent store rather than any cached view.
func (a *App) Status(ctx context.Context) error {
	st, err := a.sessions.Current(ctx)
	if err != nil {
		printlnFn("Failed to read session state:", err.Error())
		return err
	}

	switch s := st.(type) {
	case session.Authenticated:
		line := fmt.Sprintf("Signed in (role: %s)", s.Role)
		if !s.ExpiresAt.IsZero() {
			line += fmt.Sprintf(", session expires %s", s.ExpiresAt.Local().Format(time.RFC1123))
		}
		printlnFn(line)
	case session.Anonymous:
		printlnFn("Not signed in")
	}

	printlnFn("Server:", string(a.currentMode()))

	if n, unlimited := a.tracker.Remaining(); unlimited {
		printlnFn("Scans: unlimited")
	} else {
		printlnFn(fmt.Sprintf("Free scans remaining: %d", n))
	}
	return nil
}
