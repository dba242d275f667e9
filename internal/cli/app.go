package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/ramadankeeper/internal/admin"
	"github.com/dmitrijs2005/ramadankeeper/internal/catalog"
	"github.com/dmitrijs2005/ramadankeeper/internal/config"
	"github.com/dmitrijs2005/ramadankeeper/internal/logging"
	"github.com/dmitrijs2005/ramadankeeper/internal/session"
	"github.com/dmitrijs2005/ramadankeeper/internal/storage"
	"github.com/dmitrijs2005/ramadankeeper/internal/tracker"
	"github.com/dmitrijs2005/ramadankeeper/internal/users"
)

// App wires the application together and implements the REPL commands.
type App struct {
	config  *config.Config
	store   storage.Store
	users   *users.Service
	session *session.Manager
	grid    *tracker.Grid
	admin   *admin.Service
	catalog *catalog.State
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	store, err := storage.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	state := catalog.NewState()
	loader := catalog.NewLoader(cfg.CatalogURL, cfg.CatalogFetchTimeout, log)
	state.Set(loader.Load(ctx))

	us := users.NewService(users.NewStoreRepository(store), users.PlaintextComparer{})
	sess := session.NewManager(store, log)
	grid := tracker.NewGrid(store)

	adm := admin.NewService(us, grid, store, state, log)
	// An import may have replaced the persisted session pointer.
	adm.OnReload(sess.Reload)

	return &App{
		config:  cfg,
		store:   store,
		users:   us,
		session: sess,
		grid:    grid,
		admin:   adm,
		catalog: state,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Ramadan Tracker (type 'help' for commands)")
	printlnFn(periodRange(time.Now()))

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// periodRange renders the observance period banner: a fixed start date and
// the 29 days that follow it.
func periodRange(now time.Time) string {
	start := time.Date(now.Year(), time.March, 22, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 29)
	return fmt.Sprintf("Ramadan %s - %s", start.Format("2 January 2006"), end.Format("2 January 2006"))
}

func (a *App) isLoggedIn() bool {
	return a.session.Current(context.Background()) != nil
}

func (a *App) isAdmin() bool {
	u := a.session.Current(context.Background())
	return u != nil && u.IsAdmin
}

// status feeds the prompt: the username (admins marked), or "guest".
func (a *App) status() string {
	u := a.session.Current(context.Background())
	if u == nil {
		return "guest"
	}
	if u.IsAdmin {
		return u.Username + " (admin)"
	}
	return u.Username
}
