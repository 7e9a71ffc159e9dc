package stubserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Server — chi-роутер поверх in-memory стора.
type Server struct {
	store  *Store
	tokens *tokenIssuer
	log    *slog.Logger
}

// Options — параметры сборки стаба.
type Options struct {
	Logger    *slog.Logger
	JWTSecret string
	TokenTTL  time.Duration
}

// New собирает сервер стаба.
func New(store *Store, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.JWTSecret == "" {
		opts.JWTSecret = "stub-secret"
	}

	return &Server{
		store:  store,
		tokens: newTokenIssuer(opts.JWTSecret, opts.TokenTTL),
		log:    opts.Logger,
	}
}

// Handler — http.Handler со всеми маршрутами контракта под /api.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	r.Use(
		recoverer,
		requestID,
		logging(s.log),
		s.authBearer,
	)

	r.Route("/api", func(r chi.Router) {
		// auth
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		// feed
		r.Get("/feed", s.handleFeed)
		r.Post("/feed/view/{videoID}", s.handleRecordView)

		// videos
		r.Get("/videos", s.handleVideos)
		r.Post("/videos/upload", s.handleUpload)

		// social
		r.Post("/social/like/{videoID}", s.handleToggleLike)
		r.Get("/social/like/{videoID}/status", s.handleLikeStatus)
		r.Post("/social/follow/{userID}", s.handleToggleFollow)
		r.Get("/social/follow/{userID}/status", s.handleFollowStatus)
		r.Post("/social/share/{videoID}", s.handleShare)
		r.Post("/social/comment", s.handleAddComment)
		r.Get("/social/comments/{videoID}", s.handleComments)
		r.Delete("/social/comment/{commentID}", s.handleDeleteComment)

		// report
		r.Post("/report", s.handleReport)

		// profile & dashboard
		r.Get("/profile", s.handleMyProfile)
		r.Get("/users/{userID}/profile", s.handleUserProfile)
		r.Get("/dashboard", s.handleDashboard)
	})

	return r
}

// writeJSON — единый JSON-ответ с нужным Content-Type.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// writeError — тело ошибки в формате бэкенда: {"error": "..."}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeStrict — строгий JSON-декодер: неизвестные поля запрещены.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}
