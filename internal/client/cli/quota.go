package cli

import (
	"context"
	"fmt"
)

// Quota shows the remaining free scans. "quota reset" clears the counter;
// it is a maintenance operation and is never run automatically.
func (a *App) Quota(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "reset" {
		if err := a.tracker.Reset(ctx); err != nil {
			printlnFn("Failed to reset quota:", err.Error())
			return err
		}
		printlnFn("Free scan counter reset.")
		return nil
	}

	if n, unlimited := a.tracker.Remaining(); unlimited {
		printlnFn("Scans are unlimited while signed in.")
	} else {
		printlnFn(fmt.Sprintf("Free scans remaining: %d", n))
	}
	return nil
}
