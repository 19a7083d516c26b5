package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
	"github.com/jhoicas/udyog-sutra-api/internal/infrastructure/memory"
	"github.com/jhoicas/udyog-sutra-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/udyog-sutra-api/internal/infrastructure/redis"
	"github.com/jhoicas/udyog-sutra-api/pkg/config"
	"github.com/jhoicas/udyog-sutra-api/pkg/logger"
)

// stores repositorios resueltos según STORE_DRIVER y REDIS_ADDR.
type stores struct {
	users     repository.UserRepository
	customers repository.CustomerRepository
	suppliers repository.SupplierRepository
	settings  repository.SettingsRepository
	products  repository.ProductRepository
	counters  repository.CounterRepository
	health    repository.HealthChecker
	revoked   repository.TokenRevocationStore

	closers []func()
}

// Close libera conexiones en orden inverso de apertura.
func (s *stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	s := &stores{}

	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		mem := memory.NewStore()
		s.users, s.customers, s.suppliers = mem.Users, mem.Customers, mem.Suppliers
		s.settings, s.products, s.counters = mem.Settings, mem.Products, mem.Counters
		s.health, s.revoked = mem.Health, mem.Revoked
		log.Warn().Msg("STORE_DRIVER=memory: los datos no sobreviven reinicios")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		s.closers = append(s.closers, pool.Close)
		if cfg.DB.Migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				s.Close()
				return nil, fmt.Errorf("migración: %w", err)
			}
			log.Info().Msg("esquema aplicado")
		}
		s.users = postgres.NewUserRepository(pool)
		s.customers = postgres.NewCustomerRepository(pool)
		s.suppliers = postgres.NewSupplierRepository(pool)
		s.settings = postgres.NewSettingsRepository(pool)
		s.products = postgres.NewProductRepository(pool)
		s.counters = postgres.NewCounterRepository(pool)
		s.health = postgres.NewHealthChecker(pool)
		s.revoked = memory.NewRevocationStore()
	}

	if cfg.Redis.Enabled() {
		client, err := infraredis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("conexión a Redis: %w", err)
		}
		s.closers = append(s.closers, func() { _ = client.Close() })
		s.revoked = infraredis.NewTokenStore(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("revocación de tokens en Redis")
	} else if s.revoked == nil {
		s.revoked = memory.NewRevocationStore()
	}
	return s, nil
}
