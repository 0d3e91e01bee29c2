package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"pulse/internal/domain/employee"
	"pulse/internal/domain/org"
	"pulse/internal/domain/reporting"
	"pulse/internal/domain/review"
	"pulse/internal/domain/skill"
	"pulse/internal/platform/cache"
	"pulse/internal/platform/config"
	"pulse/internal/platform/db"
	"pulse/internal/platform/metrics"
	employeehandler "pulse/internal/transport/http/handlers/employee"
	orghandler "pulse/internal/transport/http/handlers/org"
	reportinghandler "pulse/internal/transport/http/handlers/reporting"
	reviewhandler "pulse/internal/transport/http/handlers/review"
	skillhandler "pulse/internal/transport/http/handlers/skill"
	"pulse/internal/transport/http/middleware"
)

func Run() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			slog.Error("migrations failed", "err", err)
			os.Exit(1)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool); err != nil {
			slog.Error("seed failed", "err", err)
			os.Exit(1)
		}
	}

	reportCache := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.ReportCacheTTL)
	defer func() { _ = reportCache.Close() }()

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(collector))
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Method(http.MethodGet, "/metrics", collector.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		orgHandler := orghandler.NewHandler(org.NewService(org.NewStore(pool)))
		orgHandler.RegisterRoutes(r)

		skillHandler := skillhandler.NewHandler(skill.NewService(skill.NewStore(pool)))
		skillHandler.RegisterRoutes(r)

		employeeHandler := employeehandler.NewHandler(employee.NewService(employee.NewStore(pool)))
		employeeHandler.RegisterRoutes(r)

		reviewHandler := reviewhandler.NewHandler(review.NewService(review.NewStore(pool)))
		reviewHandler.RegisterRoutes(r)

		reportingStore := reporting.NewStore(pool)
		reportingHandler := reportinghandler.NewHandler(reporting.NewService(reportingStore, reportingStore), reportCache)
		reportingHandler.RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	slog.Info("pulse server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
