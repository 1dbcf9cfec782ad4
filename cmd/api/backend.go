package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/recordstore"
	"github.com/jhoicas/Inventario-dashboard/pkg/config"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
	"github.com/jhoicas/Inventario-dashboard/pkg/metrics"
)

// backend repositorios del driver elegido por STORE_DRIVER.
type backend struct {
	products  repository.ProductRepository
	movements repository.StockMovementRepository
	suppliers repository.SupplierRepository
	customers repository.CustomerRepository
	users     repository.UserRepository
	close     func()
}

func openBackend(ctx context.Context, cfg *config.Config, log *logger.Logger, m *metrics.Metrics) (*backend, error) {
	switch cfg.Store.Driver {
	case config.DriverRemote:
		client, err := recordstore.NewClient(recordstore.Options{
			BaseURL:   cfg.RecordStore.BaseURL,
			ProjectID: cfg.RecordStore.ProjectID,
			PublicKey: cfg.RecordStore.PublicKey,
			Timeout:   cfg.RecordStore.Timeout,
			Logger:    log,
			Metrics:   m,
		})
		if err != nil {
			return nil, err
		}
		return &backend{
			products:  recordstore.NewProductStore(client),
			movements: recordstore.NewMovementStore(client),
			suppliers: recordstore.NewSupplierStore(client),
			customers: recordstore.NewCustomerStore(client),
			users:     recordstore.NewUserStore(client),
			close:     func() {},
		}, nil

	case config.DriverMemory:
		store := memory.NewStore(cfg.Memory.Latency)
		if err := memory.Seed(ctx, store); err != nil {
			return nil, err
		}
		log.Warn().Msg("STORE_DRIVER=memory: los datos se pierden al reiniciar")
		return &backend{
			products:  store.Products,
			movements: store.Movements,
			suppliers: store.Suppliers,
			customers: store.Customers,
			users:     store.Users,
			close:     func() {},
		}, nil

	case config.DriverPostgres:
		db, err := postgres.OpenDB(cfg.DB.ConnectionString())
		if err != nil {
			return nil, err
		}
		err = postgres.Migrate(ctx, db)
		_ = db.Close()
		if err != nil {
			return nil, err
		}
		pool, err := postgres.NewPool(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return &backend{
			products:  postgres.NewProductRepository(pool),
			movements: postgres.NewStockMovementRepository(pool),
			suppliers: postgres.NewSupplierRepository(pool),
			customers: postgres.NewCustomerRepository(pool),
			users:     postgres.NewUserRepository(pool),
			close:     pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("driver de almacenamiento desconocido %q", cfg.Store.Driver)
}
