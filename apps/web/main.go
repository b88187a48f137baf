package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	registrationhandler "github.com/orgsites/federation/domains/registration/be/handler"
	registrationrepo "github.com/orgsites/federation/domains/registration/be/repo"
	registrationservice "github.com/orgsites/federation/domains/registration/be/service"
	siteshandler "github.com/orgsites/federation/domains/sites/be/handler"
	sitesservice "github.com/orgsites/federation/domains/sites/be/service"

	"github.com/orgsites/federation/contracts"
	platformlogging "github.com/orgsites/federation/platform/go/logging"
	platformmiddleware "github.com/orgsites/federation/platform/go/middleware"
	"github.com/orgsites/federation/platform/go/tenant"
	tenantmiddleware "github.com/orgsites/federation/platform/go/tenant/middleware"
)

type config struct {
	Port            string        `env:"PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	DefaultTenant   string        `env:"DEFAULT_TENANT" envDefault:"aisf"`
}

func main() {
	ctx := context.Background()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := platformlogging.NewLogger(platformlogging.Config{
		Component: "web-server",
		Level:     cfg.LogLevel,
	})
	if err != nil {
		log.Fatalf("init zap logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	defaultID, ok := tenant.ParseID(cfg.DefaultTenant)
	if !ok {
		logger.Fatal("default tenant is not a known id", zap.String("default_tenant", cfg.DefaultTenant))
	}

	registry, err := tenant.NewRegistry()
	if err != nil {
		logger.Fatal("build tenant registry", zap.Error(err))
	}

	sitesService := sitesservice.New(registry)
	sitesHTTPHandler := siteshandler.New(sitesService, logger)

	sessionRepo := registrationrepo.NewMemoryRepository()
	registrationService := registrationservice.New(sessionRepo)
	registrationHTTPHandler := registrationhandler.New(registrationService, logger)

	registrationValidator, err := platformmiddleware.NewSpecValidator(ctx, contracts.RegistrationYAML)
	if err != nil {
		logger.Fatal("build registration spec validator", zap.Error(err))
	}

	router := chi.NewRouter()

	router.Use(
		chimw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		chimw.Timeout(cfg.RequestTimeout),
		platformmiddleware.DefaultCORS(),
	)

	router.Use(platformlogging.RequestLogger(logger))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Get("/", sitesHTTPHandler.Landing)

	router.Route("/{tenantID}", func(r chi.Router) {
		r.Use(tenantmiddleware.ResolveSite(registry, tenantmiddleware.Config{
			DefaultID: defaultID,
			URLParam:  "tenantID",
		}))

		sitesHTTPHandler.Register(r)

		r.Group(func(r chi.Router) {
			r.Use(registrationValidator)
			r.Mount("/join/sessions", registrationHTTPHandler.Routes())
		})

		r.NotFound(sitesHTTPHandler.NotFound)
	})

	router.NotFound(sitesHTTPHandler.NotFound)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	go func() {
		logger.Info("starting web server",
			zap.String("port", cfg.Port),
			zap.String("default_tenant", defaultID.String()),
		)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server listen failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
