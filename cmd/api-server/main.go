// Command api-server runs the items/users CRUD HTTP service.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"crud-service/internal/app"
	"crud-service/internal/config"
	"crud-service/internal/httpapi"
	"crud-service/internal/storage/postgres"
	"crud-service/pkg/logger"
)

func main() {
	_ = godotenv.Load() // allow .env for local runs

	cfg := config.Load()
	log := logger.New(cfg.AppName, logger.Config{Level: "info"})

	stores := app.Stores{}
	var db *sql.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err == nil {
			err = db.Ping()
		}
		if err != nil {
			log.WithError(err).Error("failed to connect to database")
			os.Exit(1)
		}
		store := postgres.New(db)
		stores.Items = store
		stores.Users = store
		log.Info("using postgres-backed store")
	} else {
		log.Warn("DATABASE_URL not set; using in-memory store")
	}

	application := app.New(stores, log)
	handler := httpapi.New(application, cfg.AppName, log)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("%s listening on %s", cfg.AppName, cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Infof("received %s, shutting down", sig)
	case err := <-errCh:
		log.WithError(err).Error("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("error shutting down server")
	}
	if db != nil {
		if err := db.Close(); err != nil {
			log.WithError(err).Warn("error closing database connection")
		}
	}
}
