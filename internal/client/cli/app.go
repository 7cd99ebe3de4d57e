package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/hmarket/internal/client/config"
	"github.com/dmitrijs2005/hmarket/internal/client/directory"
	"github.com/dmitrijs2005/hmarket/internal/client/services"
	"github.com/dmitrijs2005/hmarket/internal/client/session"
	"github.com/dmitrijs2005/hmarket/internal/client/storage"
	"github.com/dmitrijs2005/hmarket/internal/logging"
	"github.com/google/uuid"
)

type App struct {
	config       *config.Config
	log          logging.Logger
	authService  services.AuthService
	themeService services.ThemeService
	dataService  services.DataService
	notifier     *Notifier
	reader       *bufio.Reader
	out          io.Writer
	tabID        string
	stores       []storage.Store
}

// NewApp opens the durable and ephemeral stores named by c and wires the
// services on top of them. Without a configured tab id a fresh one is
// generated, which starts a new tab session.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	tabID := c.TabID
	if tabID == "" {
		tabID = uuid.NewString()
	}

	durable, err := storage.OpenDurable(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening durable store", "driver", c.DurableDriver, "error", err)
		return nil, err
	}

	ephemeral, err := storage.OpenEphemeral(ctx, c, tabID)
	if err != nil {
		_ = durable.Close()
		log.Error(ctx, "error opening ephemeral store", "driver", c.EphemeralDriver, "error", err)
		return nil, err
	}

	log = log.With("tab", tabID)
	dir := directory.New(durable, log)
	sess := session.New(dir, ephemeral, log)

	return &App{
		config:       c,
		log:          log,
		authService:  services.NewAuthService(dir, sess, log),
		themeService: services.NewThemeService(durable, log),
		dataService:  services.NewDataService(durable, ephemeral, log),
		notifier:     NewNotifier(os.Stdout, c.SimulatedLatency),
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		tabID:        tabID,
		stores:       []storage.Store{durable, ephemeral},
	}, nil
}

// Run restores the theme, prints the welcome banner and blocks in the REPL
// until the user exits, input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	fmt.Fprintf(a.out, "Welcome to hmarket (theme: %s, tab: %s). Type 'help' for commands.\n",
		a.themeService.Current(ctx), a.tabID)

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
	return nil
}

// Close releases the stores.
func (a *App) Close() error {
	var errs []error
	for _, s := range a.stores {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.stores = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, ok := a.authService.CurrentUser(ctx)
	return ok
}

func (a *App) getStatus(ctx context.Context) string {
	s := string(a.themeService.Current(ctx))
	if u, ok := a.authService.CurrentUser(ctx); ok {
		s = fmt.Sprintf("%s %s, %s", u.Email, u.Role, s)
	}
	return fmt.Sprintf("(%s)", s)
}
