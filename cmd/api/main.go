package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/udyog-sutra-api/internal/application/auth"
	"github.com/jhoicas/udyog-sutra-api/internal/application/idgen"
	"github.com/jhoicas/udyog-sutra-api/internal/application/usecase"
	"github.com/jhoicas/udyog-sutra-api/internal/infrastructure/observability"
	httpRouter "github.com/jhoicas/udyog-sutra-api/internal/interfaces/http"
	"github.com/jhoicas/udyog-sutra-api/pkg/config"
	"github.com/jhoicas/udyog-sutra-api/pkg/jwt"
	"github.com/jhoicas/udyog-sutra-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	// Montos como números JSON (creditLimit, rating, price).
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer st.Close()

	tokens, err := jwt.NewIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.Expiration)*time.Minute)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar JWT")
	}

	ids := idgen.NewGenerator(st.counters)
	authUC := auth.NewAuthUseCase(st.users, ids, auth.NewBcryptHasher(bcrypt.DefaultCost), tokens, st.revoked)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Udyog Sutra API",
		}))
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     usecase.NewUserUseCase(st.users),
		CustomerUC: usecase.NewCustomerUseCase(st.customers, ids),
		SupplierUC: usecase.NewSupplierUseCase(st.suppliers, ids),
		SettingsUC: usecase.NewSettingsUseCase(st.settings),
		ProductUC:  usecase.NewProductUseCase(st.products),
		HealthUC:   usecase.NewHealthUseCase(st.health),
		Metrics:    metrics,
		Log:        log,
		Service:    cfg.App.Name,
	})

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		return app.Listen(cfg.HTTP.Addr())
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info().Msg("señal de apagado recibida, cerrando servidor...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("servidor HTTP finalizado")
	}
	log.Info().Msg("aplicación detenida")
}
