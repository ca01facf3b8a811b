package main

import (
	"context"
	"net/http"
	"os"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/routes"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/auth"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/booking"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/catalog"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/faq"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/leads"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/menu"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/packages"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/auth/session"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/config"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/logger"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/mailer"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/metrics"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/migrate"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       auth.NewUserRepository(dbClient.DB()),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	catalogRepo := catalog.NewRepository(dbClient.DB())
	catalogService, err := catalog.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	menuService, err := menu.NewService(menu.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create menu service", err)
		os.Exit(1)
	}

	packageService, err := packages.NewService(packages.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create package service", err)
		os.Exit(1)
	}

	faqService, err := faq.NewService(faq.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create faq service", err)
		os.Exit(1)
	}

	leadService, err := leads.NewService(leads.NewRepository(dbClient.DB()), mailer.New(cfg.SMTP), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create lead service", err)
		os.Exit(1)
	}

	cartStorage, err := booking.NewRedisStorage(redisClient, cfg.Cart.TTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart storage", err)
		os.Exit(1)
	}
	bookingService, err := booking.NewService(cartStorage, catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create booking service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:       cfg,
			Logger:       logg,
			DB:           dbClient,
			Redis:        redisClient,
			Session:      sessionManager,
			Metrics:      httpMetrics,
			PromGatherer: registry,
			Auth:         authService,
			Catalog:      catalogService,
			Menu:         menuService,
			Packages:     packageService,
			FAQ:          faqService,
			Leads:        leadService,
			Booking:      bookingService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
