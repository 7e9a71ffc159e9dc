package stubserver

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	logctx "github.com/pribylovaa/go-shortform-client/pkg/log"
)

type ctxKeyUserID struct{}

// userID достаёт аутентифицированного пользователя из контекста.
// uuid.Nil — анонимный запрос.
func userID(ctx context.Context) uuid.UUID {
	if v, ok := ctx.Value(ctxKeyUserID{}).(uuid.UUID); ok {
		return v
	}
	return uuid.Nil
}

// requestID обеспечивает наличие X-Request-Id: читает заголовок либо
// генерирует криптостойкий hex id.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			var b [16]byte
			_, _ = rand.Read(b[:])
			id = hex.EncodeToString(b[:])
			r.Header.Set("X-Request-Id", id)
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

// statusWriter перехватывает статус и размер ответа.
type statusWriter struct {
	http.ResponseWriter
	status int
	count  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	count, err := w.ResponseWriter.Write(p)
	w.count += count
	return count, err
}

// logging кладёт request-scoped логгер в контекст и пишет access-запись.
func logging(l *slog.Logger) func(http.Handler) http.Handler {
	if l == nil {
		l = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLogger := l
			if rid := r.Header.Get("X-Request-Id"); rid != "" {
				reqLogger = reqLogger.With(slog.String("request_id", rid))
			}
			r = r.WithContext(logctx.Into(r.Context(), reqLogger))

			sw := &statusWriter{ResponseWriter: w}
			start := time.Now()
			next.ServeHTTP(sw, r)

			logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelInfo, "http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("dur", time.Since(start)),
				slog.Int("bytes", sw.count),
			)
		})
	}
}

// recoverer конвертирует панику в 500 без утечки деталей наружу.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "panic",
					slog.String("path", r.URL.Path),
					slog.Any("reason", rec),
				)
				writeError(w, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// authBearer валидирует Bearer-токен и кладёт id пользователя в
// контекст. Невалидный или отсутствующий токен оставляет запрос
// анонимным: обязательность авторизации решает хендлер.
func (s *Server) authBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "

		auth := r.Header.Get("Authorization")
		if strings.HasPrefix(auth, prefix) {
			token := strings.TrimSpace(auth[len(prefix):])
			if token != "" {
				if uid, err := s.tokens.validate(token); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), ctxKeyUserID{}, uid))
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
