package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/cybershield/cybershield-cli/internal/client/client"
	"github.com/cybershield/cybershield-cli/internal/client/config"
	"github.com/cybershield/cybershield-cli/internal/client/quota"
	"github.com/cybershield/cybershield-cli/internal/client/repositories/state"
	"github.com/cybershield/cybershield-cli/internal/client/services"
	"github.com/cybershield/cybershield-cli/internal/client/session"
	"github.com/cybershield/cybershield-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// Mode reflects the last known reachability of the detection API.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config      *config.Config
	log         logging.Logger
	db          *sql.DB
	sessions    *session.Manager
	tracker     *quota.Tracker
	apiClient   client.Client
	authService services.AuthService
	scanService services.ScanService

	userName string
	reader   *bufio.Reader

	mu   sync.Mutex
	mode Mode
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	db, err := client.InitDatabase(ctx, c.StateDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing state database: %w", err)
	}

	store := state.NewSQLiteRepository(db)
	bus := session.NewBus()
	sessions := session.NewManager(store, bus)

	tracker, err := quota.NewTracker(ctx, store, sessions, bus)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout, sessions.Token)

	a := &App{
		config:    c,
		log:       log,
		db:        db,
		sessions:  sessions,
		tracker:   tracker,
		apiClient: apiClient,
		mode:      ModeOnline,
		reader:    bufio.NewReader(os.Stdin),
	}
	a.authService = services.NewAuthService(apiClient, sessions)
	a.scanService = services.NewScanService(apiClient, sessions, tracker, a.refreshHistory)
	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.Root(ctx)
}

func (a *App) Close(ctx context.Context) {
	if err := a.authService.Close(ctx); err != nil {
		a.log.Warn(ctx, "error closing api client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(ctx, "error closing state database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	st, err := a.sessions.Current(context.Background())
	if err != nil {
		return false
	}
	_, ok := st.(session.Authenticated)
	return ok
}

// refreshHistory is the post-scan hook for authenticated submissions.
// Failures are reported but never fail the scan that triggered them.
func (a *App) refreshHistory(ctx context.Context) {
	records, err := a.apiClient.History(ctx)
	if err != nil {
		printlnFn("Failed to refresh history:", err.Error())
		return
	}
	printlnFn(fmt.Sprintf("History refreshed: %d scans on record", len(records)))
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	if changed {
		a.mode = mode
	}
	a.mu.Unlock()

	if changed {
		a.log.Warn(context.Background(), "connectivity changed", "mode", mode)
	}
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// StartOnlineStatusWatcher periodically probes the API health endpoint and
// updates the mode shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.apiClient.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
