package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/cybershield/cybershield-cli/internal/client/client"
)

// History prints the account's prior scans. Guest scans are not recorded
// against an account, so this requires a session.
func (a *App) History(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("History is available after login.")
		return nil
	}

	records, err := a.apiClient.History(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			printlnFn("Your session has expired. Use 'login' to sign in again.")
		} else {
			printlnFn("Failed to load history:", err.Error())
		}
		return err
	}

	if len(records) == 0 {
		printlnFn("No scans on record yet.")
		return nil
	}

	for _, r := range records {
		printlnFn(fmt.Sprintf("%-22s %-10s %.2f  %s", r.Timestamp, r.Label, r.RiskScore, r.URL))
	}
	return nil
}
