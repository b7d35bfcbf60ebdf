// Package app wires storage, catalog and services from a Config.
package app

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/rocpay1889/baba-shoping/internal/config"
	"github.com/rocpay1889/baba-shoping/internal/events"
	"github.com/rocpay1889/baba-shoping/internal/metrics"
	"github.com/rocpay1889/baba-shoping/internal/repository"
	"github.com/rocpay1889/baba-shoping/internal/service"
)

type App struct {
	Config  *config.Config
	Log     *zap.Logger
	Metrics *metrics.Metrics
	Events  events.Publisher

	Catalog  repository.CatalogRepository
	Products *service.ProductService
	Cart     *service.CartService
	Orders   *service.OrderService
	Payments *service.PaymentService
	Tracking *service.TrackingService
	Identity *service.IdentityService

	closers []func() error
}

// New opens the configured store; call Close when done.
func New(cfg *config.Config, log *zap.Logger, now func() time.Time) (*App, error) {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{Config: cfg, Log: log, Metrics: metrics.New(), Events: events.Nop{}}

	kv, tx, err := a.openStore()
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Catalog = catalog

	if cfg.Events.NATSURL != "" {
		pub, err := events.ConnectNATS(cfg.Events.NATSURL, cfg.Events.Prefix)
		if err != nil {
			// events are best effort; the storefront keeps working without them
			log.Warn("nats unavailable, events disabled", zap.String("url", cfg.Events.NATSURL), zap.Error(err))
		} else {
			a.Events = pub
			a.closers = append(a.closers, pub.Close)
		}
	}

	env := service.Env{Now: now, Log: log, Events: a.Events, Metrics: a.Metrics}
	a.Products = service.NewProductService(catalog)
	a.Cart = service.NewCartService(catalog)
	a.Orders = service.NewOrderService(kv, tx, env)
	a.Payments = service.NewPaymentService(kv, tx, a.Orders, a.Cart, env)
	a.Tracking = service.NewTrackingService(a.Orders, a.Payments, env)
	a.Identity = service.NewIdentityService(
		service.NewMockIdentityProvider(kv, now),
		service.NewCaptcha(cfg.Auth.Captcha),
		env,
	)
	return a, nil
}

func (a *App) openStore() (repository.KeyValueStore, repository.TxManager, error) {
	switch a.Config.Storage.Driver {
	case config.StorageSQLite:
		store, err := repository.OpenSQLite(a.Config.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, store.Close)
		a.Log.Info("using sqlite store", zap.String("path", store.Path()))
		return store, repository.NewSQLiteTx(store), nil
	default:
		store := repository.NewMemoryStore()
		return store, repository.NewMemoryTx(store), nil
	}
}

func loadCatalog(path string) (*repository.MemoryCatalog, error) {
	if path == "" {
		return repository.DefaultCatalog()
	}
	return repository.LoadCatalog(path)
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
