// feedwatch — безэкранный клиент ленты: поднимает движок (пагинация,
// активный плеер, предзагрузка, дедупликация просмотров) и гоняет его
// по ленте, имитируя прокрутку. Метрики Prometheus отдаются отдельным
// HTTP-листенером.
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

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/go-shortform-client/internal/api"
	"github.com/pribylovaa/go-shortform-client/internal/comments"
	"github.com/pribylovaa/go-shortform-client/internal/config"
	"github.com/pribylovaa/go-shortform-client/internal/feed"
	"github.com/pribylovaa/go-shortform-client/internal/session"
	"github.com/pribylovaa/go-shortform-client/internal/social"
	logctx "github.com/pribylovaa/go-shortform-client/pkg/log"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting feedwatch", "env", cfg.Env, "api", cfg.API.BaseURL)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	sess, err := session.Open(cfg.Session.StorePath)
	if err != nil {
		log.Error("session_store_open_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil {
			log.Warn("session_store_close_failed", slog.String("err", cerr.Error()))
		}
	}()

	if cur := sess.Current(); cur != nil {
		log.Info("session_restored", slog.String("username", cur.User.Username))
	} else {
		log.Info("anonymous_session")
	}

	client := api.New(cfg.API.BaseURL, cfg.API.Timeout, cfg.API.UploadTimeout,
		api.WithTokenSource(sess))

	dedup := feed.NewDedupTracker()
	preload := feed.NewPreloader(cfg.Feed.PreloadAhead, cfg.Feed.PreloadBehind, func(uri string) {
		log.Debug("preload_warm", slog.String("uri", uri))
	})

	ctrl := feed.NewController(client, cfg.Feed.PageSize, dedup, preload)
	viewport := feed.NewViewport(ctrl, dedup, preload, client)
	engine := social.NewEngine(ctrl, client)
	threads := comments.NewStore(client)

	// Метрики — отдельным листенером, как и в остальных сервисах.
	metricsSrv := &http.Server{
		Addr:              cfg.Metrics.Addr,
		Handler:           metricsMux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics_serve_failed", slog.String("err", err.Error()))
		}
	}()

	walkCtx := logctx.Into(rootCtx, log)
	if err := walk(walkCtx, ctrl, viewport, threads, engine); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("feed_walk_failed", slog.String("err", err.Error()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("metrics_shutdown_incomplete", slog.String("err", err.Error()))
	}

	log.Info("feedwatch_stopped")
}

func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// walk имитирует прокрутку: раз в интервал сдвигает «видимую» запись,
// догружая страницы по мере приближения к концу списка.
func walk(ctx context.Context, ctrl *feed.Controller, viewport *feed.Viewport, threads *comments.Store, _ *social.Engine) error {
	lg := logctx.From(ctx)

	if err := ctrl.LoadInitial(ctx); err != nil {
		return err
	}

	entries := ctrl.Snapshot()
	if len(entries) == 0 {
		lg.Info("feed_empty")
		return nil
	}

	for i := range entries {
		viewport.Mount(ctx, i, &logPlayer{index: i, lg: lg})
	}

	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()

	index := 0
	for {
		entries = ctrl.Snapshot()
		if index >= len(entries) {
			lg.Info("feed_walk_done", slog.Int("seen", index))
			return nil
		}

		entry := entries[index]
		viewport.HandleVisibility(ctx, feed.VisibilityEvent{Index: index, Entry: entry})
		lg.Info("watching",
			slog.Int("index", index),
			slog.String("title", entry.Title),
			slog.Int64("likes", entry.Stats.LikeCount),
		)

		if tree, err := threads.Fetch(ctx, entry.ID); err == nil {
			lg.Info("comments", slog.Int("roots", len(tree)))
		}

		// Догружаем следующую страницу за два элемента до конца.
		if index >= len(entries)-2 {
			if err := ctrl.LoadNext(ctx); err != nil {
				lg.Warn("load_next_failed", slog.String("err", err.Error()))
			}
			for i := len(entries); i < ctrl.Len(); i++ {
				viewport.Mount(ctx, i, &logPlayer{index: i, lg: lg})
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			index++
		}
	}
}

// logPlayer — хэндл плеера, который просто логирует переходы.
type logPlayer struct {
	index int
	lg    *slog.Logger
}

func (p *logPlayer) Play(context.Context) error {
	p.lg.Debug("player_play", slog.Int("index", p.index))
	return nil
}

func (p *logPlayer) Pause(context.Context) error {
	p.lg.Debug("player_pause", slog.Int("index", p.index))
	return nil
}

func (p *logPlayer) SeekStart(context.Context) error {
	p.lg.Debug("player_seek_start", slog.Int("index", p.index))
	return nil
}

func (p *logPlayer) SetMuted(_ context.Context, muted bool) error {
	p.lg.Debug("player_set_muted", slog.Int("index", p.index), slog.Bool("muted", muted))
	return nil
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
