package app

import (
	"time"

	"github.com/tutorhub/client/internal/api"
	"github.com/tutorhub/client/internal/booking"
	"github.com/tutorhub/client/internal/catalog"
	"github.com/tutorhub/client/internal/config"
	"github.com/tutorhub/client/internal/models"
	"github.com/tutorhub/client/internal/profile"
	"github.com/tutorhub/client/internal/session"
	"github.com/tutorhub/client/internal/store"
)

const catalogCacheTTL = 30 * time.Second

// Dependencies wires together the concrete implementations used by the CLI
// commands.
type Dependencies struct {
	Store    *store.SQLiteStore
	Sessions *session.Manager
	API      *api.Client
	Catalog  *catalog.CachingProvider
	Profiles *profile.Service
}

// buildDependencies constructs the dependency graph for one invocation. The
// session manager doubles as the API client's token source: the two are
// wired together before either has loaded any state.
func buildDependencies(cfg config.Config) (*Dependencies, error) {
	kv, err := store.OpenSQLite(cfg.Store.Path)
	if err != nil {
		return nil, err
	}

	manager := session.NewManager(kv, nil)
	limiter := api.NewLimiter(cfg.API.RequestsPerSecond, cfg.API.Burst)
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, manager, limiter)
	manager.SetAuth(client)

	return &Dependencies{
		Store:    kv,
		Sessions: manager,
		API:      client,
		Catalog:  catalog.NewCachingProvider(client, catalogCacheTTL),
		Profiles: profile.NewService(client),
	}, nil
}

// Bookings constructs a booking controller for the given role.
func (d *Dependencies) Bookings(role models.Role) *booking.Controller {
	return booking.NewController(d.API, role)
}

// Close releases held resources.
func (d *Dependencies) Close() {
	if d.Store != nil {
		_ = d.Store.Close()
	}
}
