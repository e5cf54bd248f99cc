package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
	"waypoint-route-service/internal/adapters/cache"
	"waypoint-route-service/internal/adapters/repositories"
	"waypoint-route-service/internal/adapters/routing"
	"waypoint-route-service/internal/api"
	"waypoint-route-service/internal/config"
	"waypoint-route-service/internal/platform/db"
	"waypoint-route-service/internal/platform/logger"
	"waypoint-route-service/internal/ports"
	"waypoint-route-service/internal/services"
	"waypoint-route-service/internal/session"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, route caches, ORS/OSRM) behind ports and starts the HTTP server.
func main() {
	cfg := config.Load()
	logger.Setup(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sqliteDB, err := openSqlite(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	// Initialize schema and seed the technician roster on startup for local runs.
	if err := initAndSeed(sqliteDB, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	routeCache, closeCache, err := newRouteCache(ctx, cfg, sqliteDB)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	provider := newRoutingProvider(cfg, routeCache)
	assembler := services.NewRouteAssembler(provider, cfg.Routing.Timeout)

	sessions := session.NewRegistry()
	go sessions.Run(ctx, cfg.Session.SweepInterval, cfg.Session.MaxIdle)

	roster := repositories.NewSqliteTechnicianRepository(sqliteDB)
	router := api.NewRouter(sessions, assembler, roster)

	// WriteTimeout leaves room for one bounded routing call per request.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Routing.Timeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("server shutdown failed")
		}
	}()

	log.WithFields(log.Fields{
		"addr":        srv.Addr,
		"routing":     cfg.Routing.Provider,
		"route_cache": cfg.Cache.Backend,
	}).Info("Server listening")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func openSqlite(dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("openDB: create directory %q: %w", dir, err)
		}
	}
	return db.OpenSqlite(dbPath)
}

func initAndSeed(sqliteDB *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(sqliteDB); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if _, err := os.Stat(seedPath); errors.Is(err, fs.ErrNotExist) {
		log.WithField("seed_path", seedPath).Warn("technician seed file not found, roster left as is")
		return nil
	}

	if err := repositories.SeedTechniciansFromJSON(sqliteDB, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// newRoutingProvider returns nil when street routing is disabled,
// which makes every multi-stop route a straight line.
func newRoutingProvider(cfg *config.Config, routeCache ports.RouteCache) ports.RoutingProvider {
	var provider ports.RoutingProvider

	switch cfg.Routing.Provider {
	case "ors":
		p, err := routing.NewORSDirectionsProvider(cfg.Routing.ORSAPIKey, cfg.Routing.ORSBaseURL, cfg.Routing.ORSProfile)
		if err != nil {
			log.WithError(err).Warn("ORS routing disabled, routes will use straight lines")
			return nil
		}
		provider = p
	case "osrm":
		provider = routing.NewOSRMProvider(cfg.Routing.OSRMBaseURL, cfg.Routing.OSRMProfile)
	case "none", "":
		return nil
	default:
		log.WithField("provider", cfg.Routing.Provider).Warn("unknown routing provider, routes will use straight lines")
		return nil
	}

	if routeCache != nil {
		return routing.NewCachedProvider(provider, routeCache)
	}
	return provider
}

// newRouteCache builds the configured route cache; nil means no caching.
func newRouteCache(ctx context.Context, cfg *config.Config, sqliteDB *sql.DB) (ports.RouteCache, func(), error) {
	noop := func() {}

	switch cfg.Cache.Backend {
	case "", "none":
		return nil, noop, nil
	case "sqlite":
		return cache.NewSqliteRouteCache(sqliteDB, cfg.Cache.TTL), noop, nil
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, noop, errors.New("route cache: DATABASE_URL is required for postgres")
		}
		pg, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("route cache: %w", err)
		}
		c := cache.NewSQLRouteCache(pg, cfg.Cache.TTL)
		if err := c.EnsureSchema(ctx); err != nil {
			pg.Close()
			return nil, noop, err
		}
		return c, func() { pg.Close() }, nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("route cache: ping redis %q: %w", cfg.Cache.RedisAddr, err)
		}
		return cache.NewRedisRouteCache(client, cfg.Cache.TTL), func() { client.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("route cache: unknown backend %q", cfg.Cache.Backend)
	}
}
