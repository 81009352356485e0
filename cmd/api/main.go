package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/StoreRating-api/internal/application/analytics"
	"github.com/jhoicas/StoreRating-api/internal/application/auth"
	apprating "github.com/jhoicas/StoreRating-api/internal/application/rating"
	"github.com/jhoicas/StoreRating-api/internal/application/report"
	"github.com/jhoicas/StoreRating-api/internal/application/usecase"
	"github.com/jhoicas/StoreRating-api/internal/domain/repository"
	"github.com/jhoicas/StoreRating-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/StoreRating-api/internal/infrastructure/pdf"
	"github.com/jhoicas/StoreRating-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/StoreRating-api/internal/interfaces/http"
	"github.com/jhoicas/StoreRating-api/pkg/config"
	"github.com/jhoicas/StoreRating-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// backend repositorios y runner de transacciones del driver elegido.
type backend struct {
	users    repository.UserRepository
	stores   repository.StoreRepository
	ratings  repository.RatingRepository
	stats    repository.StatsRepository
	txRunner interface {
		apprating.TxRunner
		usecase.AccountsTxRunner
	}
	close func()
}

func openBackend(ctx context.Context, cfg *config.Config, log *logger.Logger) (*backend, error) {
	if cfg.App.StorageDriver == config.StorageDriverMemory {
		log.Warn().Msg("STORAGE_DRIVER=memory: los datos se pierden al reiniciar")
		db := memory.NewDB()
		return &backend{
			users:    memory.NewUserRepository(db),
			stores:   memory.NewStoreRepository(db),
			ratings:  memory.NewRatingRepository(db),
			stats:    memory.NewStatsRepository(db),
			txRunner: memory.NewTxRunner(db),
			close:    func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("esquema aplicado")
	}
	return &backend{
		users:    postgres.NewUserRepository(pool),
		stores:   postgres.NewStoreRepository(pool),
		ratings:  postgres.NewRatingRepository(pool),
		stats:    postgres.NewStatsRepository(pool),
		txRunner: postgres.NewTxRunner(pool),
		close:    pool.Close,
	}, nil
}

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
		Str("storage", cfg.App.StorageDriver).
		Msg("iniciando aplicación")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// run libera el almacenamiento antes de volver; recién entonces se termina el proceso.
	if err := run(context.Background(), cfg, log, quit); err != nil {
		log.Fatal().Err(err).Msg("aplicación finalizada con error")
	}
	log.Info().Msg("aplicación detenida")
}

// run arma la aplicación, atiende hasta recibir una señal en quit y apaga el servidor.
func run(ctx context.Context, cfg *config.Config, log *logger.Logger, quit <-chan os.Signal) error {
	if cfg.JWT.Secret == "" {
		return errors.New("JWT_SECRET es requerido")
	}

	be, err := openBackend(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("inicializar almacenamiento: %w", err)
	}
	defer be.close()

	app := newApp(cfg, log, be)

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("servidor HTTP: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("apagado del servidor: %w", err)
	}
	return nil
}

// newApp construye la app Fiber con middlewares, documentación y rutas.
func newApp(cfg *config.Config, log *logger.Logger, be *backend) *fiber.App {
	authUC := auth.NewAuthUseCase(be.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	ownerUC := usecase.NewOwnerUseCase(be.stores, be.ratings)
	reportUC := report.NewPDFUseCase(ownerUC, infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	// swagger.New entra en pánico si el archivo no existe.
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Store Rating API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("documentación OpenAPI no encontrada, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         usecase.NewUserUseCase(be.users, be.txRunner),
		StoreUC:        usecase.NewStoreUseCase(be.stores, be.txRunner),
		OwnerUC:        ownerUC,
		RatingUC:       apprating.NewSubmitRatingUseCase(be.txRunner, be.ratings),
		DashboardUC:    appanalytics.NewDashboardUseCase(be.stats),
		ReportUC:       reportUC,
		Logger:         log,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		AuthPerMinute:  cfg.RateLimit.AuthPerMinute,
		AuthBurst:      cfg.RateLimit.AuthBurst,
	})
	return app
}
