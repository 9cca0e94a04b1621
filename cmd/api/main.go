package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jhoicas/Empleos-api/docs"
	"github.com/jhoicas/Empleos-api/internal/application/auth"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Empleos-api/internal/interfaces/http"
	"github.com/jhoicas/Empleos-api/pkg/config"
	"github.com/jhoicas/Empleos-api/pkg/logger"
	"github.com/jhoicas/Empleos-api/pkg/session"
)

// @title        Empleos API
// @version      1.0
// @description  Bolsa de empleo: candidatos, empresas, vacantes y postulaciones.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	applicationRepo := postgres.NewApplicationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	fileStorage, err := storage.NewLocalStorage(cfg.Uploads)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar directorios de uploads")
	}

	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	var sessions session.Store
	switch cfg.Session.Store {
	case "redis":
		redisStore := session.NewRedisStore(cfg.Session.RedisAddr, cfg.Session.RedisPassword, cfg.Session.RedisDB, sessionTTL)
		if err := redisStore.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisStore.Close()
		sessions = redisStore
		log.Info().Str("addr", cfg.Session.RedisAddr).Msg("sesiones en Redis")
	default:
		memStore := session.NewMemoryStore(sessionTTL)
		defer memStore.Close()
		sessions = memStore
		log.Info().Msg("sesiones en memoria")
	}

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, txRunner)
	jobUC := usecase.NewJobUseCase(jobRepo, companyRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	applicationUC := usecase.NewApplicationUseCase(applicationRepo, jobRepo)
	adminUC := usecase.NewAdminUseCase(userRepo, jobRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 * 1024 * 1024, // por encima del tope de upload más grande
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Empleos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Static("/uploads", fileStorage.BaseDir())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		CompanyUC:     companyUC,
		UserUC:        userUC,
		ApplicationUC: applicationUC,
		AdminUC:       adminUC,
		Sessions:      sessions,
		Storage:       fileStorage,
		CookieName:    cfg.Session.CookieName,
		CookieSecure:  cfg.Session.CookieSecure,
		SessionTTL:    sessionTTL,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
