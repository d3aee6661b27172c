package app

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/menu-cms/internal/app/fanout"
	"github.com/jsamuelsen11/menu-cms/internal/domain/category"
	"github.com/jsamuelsen11/menu-cms/internal/domain/menuitem"
	"github.com/jsamuelsen11/menu-cms/internal/domain/offer"
	"github.com/jsamuelsen11/menu-cms/internal/ports"
)

// Compile-time check that MenuService implements ports.MenuService.
var _ ports.MenuService = (*MenuService)(nil)

// dashboardWorkers bounds concurrent store reads for Dashboard.
const dashboardWorkers = 3

// MenuService implements the public read model over the three collections.
type MenuService struct {
	categories ports.OrderedStore[category.Category]
	items      ports.OrderedStore[menuitem.MenuItem]
	offers     ports.OrderedStore[offer.Offer]
	logger     *slog.Logger
}

// NewMenuService creates a MenuService. A nil logger discards output.
func NewMenuService(
	categories ports.OrderedStore[category.Category],
	items ports.OrderedStore[menuitem.MenuItem],
	offers ports.OrderedStore[offer.Offer],
	logger *slog.Logger,
) *MenuService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &MenuService{
		categories: categories,
		items:      items,
		offers:     offers,
		logger:     logger,
	}
}

// Menu loads categories and menu items concurrently.
func (s *MenuService) Menu(ctx context.Context) (*ports.Menu, error) {
	var menu ports.Menu

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		menu.Categories, err = s.categories.ListOrdered(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		menu.Items, err = s.items.ListOrdered(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "failed to load menu",
			slog.String("operation", "Menu"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &menu, nil
}

// ActiveOffers returns at most limit active offers in display order.
func (s *MenuService) ActiveOffers(ctx context.Context, limit int) ([]offer.Offer, error) {
	all, err := s.offers.ListOrdered(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list offers",
			slog.String("operation", "ActiveOffers"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return offer.Active(all, limit), nil
}

// Dashboard counts every collection. The offers read also yields the
// active count.
func (s *MenuService) Dashboard(ctx context.Context) (*ports.Dashboard, error) {
	var active int

	counters := []func(context.Context) (int, error){
		func(ctx context.Context) (int, error) {
			all, err := s.categories.ListOrdered(ctx)
			return len(all), err
		},
		func(ctx context.Context) (int, error) {
			all, err := s.items.ListOrdered(ctx)
			return len(all), err
		},
		func(ctx context.Context) (int, error) {
			all, err := s.offers.ListOrdered(ctx)
			active = len(offer.Active(all, len(all)))
			return len(all), err
		},
	}

	results := fanout.Run(ctx, dashboardWorkers, counters, func(ctx context.Context, count func(context.Context) (int, error)) (int, error) {
		return count(ctx)
	})

	counts, err := fanout.Values(results)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build dashboard",
			slog.String("operation", "Dashboard"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &ports.Dashboard{
		Categories:   counts[0],
		MenuItems:    counts[1],
		Offers:       counts[2],
		ActiveOffers: active,
	}, nil
}
