// Package store selects the persistence driver named in configuration and
// returns one ordered store per entity kind. The drivers live in the
// sqlite, postgres and mongodb subpackages and share the JSON body codecs
// from store/document.
package store

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/menu-cms/internal/adapters/store/document"
	"github.com/jsamuelsen11/menu-cms/internal/adapters/store/mongodb"
	"github.com/jsamuelsen11/menu-cms/internal/adapters/store/postgres"
	"github.com/jsamuelsen11/menu-cms/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/domain/category"
	"github.com/jsamuelsen11/menu-cms/internal/domain/menuitem"
	"github.com/jsamuelsen11/menu-cms/internal/domain/offer"
	"github.com/jsamuelsen11/menu-cms/internal/platform/config"
	"github.com/jsamuelsen11/menu-cms/internal/ports"
)

// Kinds lists every collection the service persists.
var Kinds = []domain.Kind{category.Kind, menuitem.Kind, offer.Kind}

// backend is the connection-level surface shared by every driver.
type backend interface {
	ports.HealthChecker
	Migrate(ctx context.Context, kinds ...domain.Kind) error
	Close() error
}

// Stores bundles the per-kind stores of one backend connection.
type Stores struct {
	Categories ports.OrderedStore[category.Category]
	MenuItems  ports.OrderedStore[menuitem.MenuItem]
	Offers     ports.OrderedStore[offer.Offer]

	db backend
}

// Health returns the connection health checker, registered as "store".
func (s *Stores) Health() ports.HealthChecker { return s.db }

// Close releases the backend connection.
func (s *Stores) Close() error { return s.db.Close() }

// Open connects to the configured driver, optionally creates the schema and
// returns the stores. The connect timeout bounds connecting and migrating.
func Open(ctx context.Context, cfg *config.StoreConfig) (*Stores, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	var s *Stores
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		s = &Stores{
			Categories: sqlite.New(db, document.Categories()),
			MenuItems:  sqlite.New(db, document.MenuItems()),
			Offers:     sqlite.New(db, document.Offers()),
			db:         db,
		}

	case config.DriverPostgres:
		db, err := postgres.Connect(ctx, cfg.DSN, cfg.MaxConns)
		if err != nil {
			return nil, err
		}
		s = &Stores{
			Categories: postgres.New(db, document.Categories()),
			MenuItems:  postgres.New(db, document.MenuItems()),
			Offers:     postgres.New(db, document.Offers()),
			db:         db,
		}

	case config.DriverMongo:
		db, err := mongodb.Connect(ctx, cfg.DSN, cfg.Database, cfg.MaxConns)
		if err != nil {
			return nil, err
		}
		s = &Stores{
			Categories: mongodb.New(db, document.Categories()),
			MenuItems:  mongodb.New(db, document.MenuItems()),
			Offers:     mongodb.New(db, document.Offers()),
			db:         db,
		}

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}

	if cfg.Migrate {
		if err := s.db.Migrate(ctx, Kinds...); err != nil {
			_ = s.db.Close()
			return nil, err
		}
	}
	return s, nil
}
