// stub-server — локальный бэкенд для разработки клиента: лента,
// соцдействия, комментарии, профили и загрузка роликов в памяти,
// с тем же контрактом, что и боевой API.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pribylovaa/go-shortform-client/internal/stubserver"
)

func main() {
	var (
		addr   string
		secret string
		env    string
	)
	flag.StringVar(&addr, "addr", "localhost:8080", "listen address")
	flag.StringVar(&secret, "jwt-secret", "", "jwt signing secret (default built-in dev secret)")
	flag.StringVar(&env, "env", "local", "environment: local|dev|prod")
	flag.Parse()

	log := setupLogger(env)
	slog.SetDefault(log)

	srv := stubserver.New(stubserver.NewStore(), stubserver.Options{
		Logger:    log,
		JWTSecret: secret,
		TokenTTL:  24 * time.Hour,
	})

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	go func() {
		log.Info("stub_server_listening", slog.String("addr", addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("serve_failed", slog.String("err", err.Error()))
			rootCancel()
		}
	}()

	<-rootCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown_incomplete", slog.String("err", err.Error()))
	}

	log.Info("stub_server_stopped")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "dev":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
