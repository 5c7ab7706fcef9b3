package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"call_analytics/internal/handlers"
	"call_analytics/internal/logger"
	"call_analytics/internal/repository"
	"call_analytics/internal/server"
	"call_analytics/internal/service"

	"github.com/spf13/viper"
)

func main() {
	// load config.yml first so the log level comes from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log_level"))

	// open the log store read-only; a missing store is a configuration
	// error, not something to create or repair here
	db, err := openStore(log)
	if err != nil {
		log.Fatalw("failed to open log store", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Errorw("failed to close log store", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(db)
	services := service.NewService(repos, serviceOptions())
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// serviceOptions maps config keys onto the service tunables, keeping the
// reference TTLs and filter edges as defaults.
func serviceOptions() service.Options {
	opts := service.DefaultOptions()
	if d := viper.GetDuration("cache.rows_ttl"); d > 0 {
		opts.RowsTTL = d
	}
	if d := viper.GetDuration("cache.types_ttl"); d > 0 {
		opts.TypesTTL = d
	}
	if v := viper.GetFloat64("filters.duration_ceiling"); v > 0 {
		opts.Filters.DurationCeiling = v
	}
	if n := viper.GetInt("filters.default_limit"); n > 0 {
		opts.Filters.DefaultLimit = n
	}
	if n := viper.GetInt("filters.max_limit"); n > 0 {
		opts.Filters.MaxLimit = n
	}
	return opts
}

// openStore opens the SQLite log store using configuration.
func openStore(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "logs/log.db")
		dbPath = "logs/log.db"
	}
	return repository.OpenStore(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
