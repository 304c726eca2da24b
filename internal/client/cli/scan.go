package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cybershield/cybershield-cli/internal/client/models"
	"github.com/cybershield/cybershield-cli/internal/client/services"
	"github.com/cybershield/cybershield-cli/internal/common"
)

// sleepFn is a test seam so tests do not wait for the real redirect delay.
var sleepFn = time.Sleep

// Scan classifies one URL. The URL is taken from the command arguments or
// prompted for. When the free quota is exhausted the user is pointed at the
// login prompt after a short delay instead of performing a request.
func (a *App) Scan(ctx context.Context, args []string) error {
	var raw string
	if len(args) > 0 {
		raw = strings.Join(args, " ")
	} else {
		var err error
		raw, err = getSimpleText(a.reader, "Enter URL to scan", os.Stdout)
		if err != nil {
			return err
		}
	}

	out, err := a.scanService.Scan(ctx, raw)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmptyURL):
			printlnFn("Usage: scan <url>")
			return nil

		case errors.Is(err, common.ErrScanLimitReached):
			printlnFn("You have reached your free scan limit. Please sign up or log in to continue.")
			sleepFn(a.config.LoginRedirectDelay)
			return a.Login(ctx)

		case errors.Is(err, common.ErrSessionExpired):
			a.userName = ""
			printlnFn("Your session has expired and no free scans remain. Use 'login' to sign in again.")
			return err

		default:
			printlnFn("Scan failed:", err.Error())
			return err
		}
	}

	// a 401 mid-flight demotes the session; reflect that in the prompt
	if out.Mode == services.ModeGuest && a.userName != "" {
		a.userName = ""
		printlnFn("Your session expired; this scan used one of your free scans.")
	}

	a.printResult(out.Result)

	if n, unlimited := a.tracker.Remaining(); !unlimited {
		printlnFn(fmt.Sprintf("Free scans remaining: %d. Sign up to unlock unlimited scans.", n))
	}
	return nil
}

func (a *App) printResult(res *models.ScanResult) {
	verdict := "LEGITIMATE"
	if res.Label == models.LabelPhishing {
		verdict = "PHISHING"
	}
	printlnFn(fmt.Sprintf("%s  %s", verdict, res.URL))
	printlnFn(fmt.Sprintf("  risk score: %.2f (threshold %.2f)", res.RiskScore, res.Threshold))
	if res.Explanation != "" {
		printlnFn("  " + res.Explanation)
	}
}
