// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/menu-cms/internal/adapters/assets"
	adapthttp "github.com/jsamuelsen11/menu-cms/internal/adapters/http"
	"github.com/jsamuelsen11/menu-cms/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/menu-cms/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/menu-cms/internal/adapters/store"
	"github.com/jsamuelsen11/menu-cms/internal/app"
	"github.com/jsamuelsen11/menu-cms/internal/app/reorder"
	"github.com/jsamuelsen11/menu-cms/internal/domain/category"
	"github.com/jsamuelsen11/menu-cms/internal/domain/menuitem"
	"github.com/jsamuelsen11/menu-cms/internal/domain/offer"
	"github.com/jsamuelsen11/menu-cms/internal/platform/config"
	"github.com/jsamuelsen11/menu-cms/internal/platform/health"
	"github.com/jsamuelsen11/menu-cms/internal/platform/httpclient"
	"github.com/jsamuelsen11/menu-cms/internal/platform/logging"
	"github.com/jsamuelsen11/menu-cms/internal/platform/telemetry"
	"github.com/jsamuelsen11/menu-cms/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	reorderDrainTimeout   = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	objectStorageClient = "object-storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	stores := do.MustInvoke[*store.Stores](injector)

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(stores.Health())
	if cfg.Assets.Driver == config.AssetsS3 {
		registry.Register(do.MustInvoke[*httpclient.Client](injector))
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		_ = stores.Close()
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Let background order writes finish before the stores close.
	drainCtx, drainCancel := context.WithTimeout(context.Background(), reorderDrainTimeout)
	defer drainCancel()

	if err := drainReorders(drainCtx, injector); err != nil {
		logger.Error("pending order writes abandoned", slog.Any("error", err))
	}

	if err := stores.Close(); err != nil {
		logger.Error("store close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func drainReorders(ctx context.Context, i do.Injector) error {
	return errors.Join(
		do.MustInvoke[*reorder.Controller[category.Category]](i).Wait(ctx),
		do.MustInvoke[*reorder.Controller[menuitem.MenuItem]](i).Wait(ctx),
		do.MustInvoke[*reorder.Controller[offer.Offer]](i).Wait(ctx),
	)
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	registerInfrastructure(ctx, injector, cfg, logger)
	registerServices(injector, cfg, logger)
	registerHTTP(injector, cfg, logger)
}

func registerInfrastructure(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*store.Stores, error) {
		s, err := store.Open(ctx, &cfg.Store)
		if err != nil {
			return nil, fmt.Errorf("opening %s store: %w", cfg.Store.Driver, err)
		}
		logger.Info("store ready", slog.String("driver", cfg.Store.Driver))
		return s, nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, objectStorageClient, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AssetStore, error) {
		if cfg.Assets.Driver != config.AssetsS3 {
			logger.Warn("image uploads disabled", slog.String("assets_driver", cfg.Assets.Driver))
			return assets.Discard{}, nil
		}
		client := do.MustInvoke[*httpclient.Client](i)
		api, err := assets.NewClient(ctx, &cfg.Assets, client.Doer())
		if err != nil {
			return nil, fmt.Errorf("creating s3 client: %w", err)
		}
		return assets.New(api, &cfg.Assets, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})
}

func registerServices(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*reorder.Controller[category.Category], error) {
		stores := do.MustInvoke[*store.Stores](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return reorder.New[category.Category](category.Kind, stores.Categories, cfg.Reorder.PersistTimeout, logger,
			reorder.WithMetrics(metrics)), nil
	})
	do.Provide(injector, func(i do.Injector) (*reorder.Controller[menuitem.MenuItem], error) {
		stores := do.MustInvoke[*store.Stores](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return reorder.New[menuitem.MenuItem](menuitem.Kind, stores.MenuItems, cfg.Reorder.PersistTimeout, logger,
			reorder.WithMetrics(metrics)), nil
	})
	do.Provide(injector, func(i do.Injector) (*reorder.Controller[offer.Offer], error) {
		stores := do.MustInvoke[*store.Stores](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return reorder.New[offer.Offer](offer.Kind, stores.Offers, cfg.Reorder.PersistTimeout, logger,
			reorder.WithMetrics(metrics)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CatalogService[category.Category], error) {
		stores := do.MustInvoke[*store.Stores](i)
		return app.NewCatalog(category.Kind, stores.Categories,
			do.MustInvoke[ports.AssetStore](i),
			do.MustInvoke[*reorder.Controller[category.Category]](i),
			logger,
			app.WithMetrics[category.Category](do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.CatalogService[menuitem.MenuItem], error) {
		stores := do.MustInvoke[*store.Stores](i)
		return app.NewCatalog(menuitem.Kind, stores.MenuItems,
			do.MustInvoke[ports.AssetStore](i),
			do.MustInvoke[*reorder.Controller[menuitem.MenuItem]](i),
			logger,
			app.WithMetrics[menuitem.MenuItem](do.MustInvoke[*telemetry.Metrics](i)),
			app.WithReferenceCheck(app.CategoryExists(stores.Categories)),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.CatalogService[offer.Offer], error) {
		stores := do.MustInvoke[*store.Stores](i)
		return app.NewCatalog(offer.Kind, stores.Offers,
			do.MustInvoke[ports.AssetStore](i),
			do.MustInvoke[*reorder.Controller[offer.Offer]](i),
			logger,
			app.WithMetrics[offer.Offer](do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.MenuService, error) {
		stores := do.MustInvoke[*store.Stores](i)
		return app.NewMenuService(stores.Categories, stores.MenuItems, stores.Offers, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.AuthService, error) {
		svc, err := app.NewAuthService(&cfg.Auth, logger)
		if err != nil {
			return nil, fmt.Errorf("configuring admin auth: %w", err)
		}
		return svc, nil
	})
}

func registerHTTP(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		limit := cfg.Assets.MaxUploadBytes
		return adapthttp.Handlers{
			Categories: handlers.NewCategoryHandler(do.MustInvoke[ports.CatalogService[category.Category]](i), limit),
			MenuItems:  handlers.NewMenuItemHandler(do.MustInvoke[ports.CatalogService[menuitem.MenuItem]](i), limit),
			Offers:     handlers.NewOfferHandler(do.MustInvoke[ports.CatalogService[offer.Offer]](i), limit),
			Menu:       handlers.NewMenuHandler(do.MustInvoke[ports.MenuService](i)),
			Auth:       handlers.NewAuthHandler(do.MustInvoke[ports.AuthService](i)),
			Health:     handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		guards := adapthttp.Guards{
			Admin: middleware.RequireAdmin(do.MustInvoke[ports.AuthService](i)),
			Login: middleware.RateLimit(cfg.Auth.LoginRateLimit),
		}

		return adapthttp.NewRouter(h, guards,
			middleware.Recovery(logger),
			adapthttp.NewCORS(cfg.CORS),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
