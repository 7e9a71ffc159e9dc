package stubserver

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/go-shortform-client/internal/models"
)

// ---- auth ----

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string             `json:"token"`
	User  models.AccountUser `json:"user"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	a, err := s.store.createAccount(req.Username, req.Email, hash)
	if err != nil {
		writeError(w, http.StatusConflict, "username already taken")
		return
	}

	s.respondAuth(w, a)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, ok := s.store.accountByName(strings.TrimSpace(req.Username))
	if !ok || !checkPassword(a.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	s.respondAuth(w, a)
}

func (s *Server) respondAuth(w http.ResponseWriter, a *account) {
	token, err := s.tokens.issue(a.ID, a.Username, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Token: token,
		User: models.AccountUser{
			ID:       a.ID,
			Username: a.Username,
			Email:    a.Email,
		},
	})
}

// ---- feed ----

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", 10)

	writeJSON(w, http.StatusOK, s.store.feed(userID(r.Context()), page, size))
}

func (s *Server) handleRecordView(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid video id")
		return
	}

	if err := s.store.recordView(videoID); err != nil {
		writeError(w, http.StatusNotFound, "video not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "View recorded",
	})
}

// ---- videos ----

func (s *Server) handleVideos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.allVideos(userID(r.Context())))
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	uid := userID(r.Context())
	if uid == uuid.Nil {
		writeError(w, http.StatusUnauthorized, "Please login first")
		return
	}

	mr, err := r.MultipartReader()
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart body expected")
		return
	}

	var title, description, fileName string

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			writeError(w, http.StatusBadRequest, "broken multipart body")
			return
		}

		switch part.FormName() {
		case "file":
			fileName = part.FileName()
			// Байты не сохраняем: стаб учитывает только факт загрузки.
			_, _ = io.Copy(io.Discard, part)
		case "title":
			raw, _ := io.ReadAll(io.LimitReader(part, 4<<10))
			title = strings.TrimSpace(string(raw))
		case "description":
			raw, _ := io.ReadAll(io.LimitReader(part, 64<<10))
			description = string(raw)
		}
	}

	if title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	v := s.store.addVideo(uid, title, description, fmt.Sprintf("/videos/stream/%s", fileName))
	entry, _ := s.store.entryByID(v.ID, uid)
	writeJSON(w, http.StatusOK, entry)
}

// ---- social ----

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	uid := userID(r.Context())
	if uid == uuid.Nil {
		writeError(w, http.StatusUnauthorized, "Please login first")
		return
	}

	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid video id")
		return
	}

	liked, err := s.store.toggleLike(uid, videoID)
	if err != nil {
		writeError(w, http.StatusNotFound, "video not found")
		return
	}

	msg := "Video unliked"
	if liked {
		msg = "Video liked"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"liked":   liked,
		"message": msg,
	})
}

func (s *Server) handleLikeStatus(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid video id")
		return
	}

	liked := false
	if uid := userID(r.Context()); uid != uuid.Nil {
		liked = s.store.isLiked(uid, videoID)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"liked": liked})
}

func (s *Server) handleToggleFollow(w http.ResponseWriter, r *http.Request) {
	uid := userID(r.Context())
	if uid == uuid.Nil {
		writeError(w, http.StatusUnauthorized, "Please login first")
		return
	}

	target, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	following := s.store.toggleFollow(uid, target)
	msg := "Unfollowed"
	if following {
		msg = "Now following"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"following": following,
		"message":   msg,
	})
}

func (s *Server) handleFollowStatus(w http.ResponseWriter, r *http.Request) {
	target, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	following := false
	if uid := userID(r.Context()); uid != uuid.Nil {
		following = s.store.isFollowing(uid, target)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"following":     following,
		"followerCount": s.store.followerCount(target),
	})
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid video id")
		return
	}

	if err := s.store.recordShare(videoID); err != nil {
		writeError(w, http.StatusNotFound, "video not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"shareLink": fmt.Sprintf("https://videoapp.com/video/%s", videoID),
	})
}

type commentRequest struct {
	VideoID  uuid.UUID `json:"videoId"`
	Content  string    `json:"content"`
	ParentID string    `json:"parentId,omitempty"`
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	uid := userID(r.Context())
	if uid == uuid.Nil {
		writeError(w, http.StatusUnauthorized, "Please login first")
		return
	}

	var req commentRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}

	parentID := uuid.Nil
	if req.ParentID != "" {
		var err error
		if parentID, err = uuid.Parse(req.ParentID); err != nil {
			writeError(w, http.StatusBadRequest, "invalid parent id")
			return
		}
	}

	c, err := s.store.addComment(uid, req.VideoID, parentID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, errNotFound):
			writeError(w, http.StatusNotFound, "video not found")
		default:
			writeError(w, http.StatusBadRequest, "parent comment not found")
		}
		return
	}

	writeJSON(w, http.StatusOK, s.store.commentNode(c.ID))
}

func (s *Server) handleComments(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid video id")
		return
	}

	nested := r.URL.Query().Get("nested") == "true"
	writeJSON(w, http.StatusOK, s.store.commentTree(videoID, nested))
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	uid := userID(r.Context())
	if uid == uuid.Nil {
		writeError(w, http.StatusUnauthorized, "Please login first")
		return
	}

	commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := s.store.deleteComment(commentID, uid); err != nil {
		writeError(w, http.StatusNotFound, "comment not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Comment deleted",
	})
}

// ---- report ----

type reportRequest struct {
	VideoID uuid.UUID `json:"videoId"`
	Reason  string    `json:"reason"`
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	uid := userID(r.Context())
	if uid == uuid.Nil {
		writeError(w, http.StatusUnauthorized, "Please login first")
		return
	}

	var req reportRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !models.ReportReason(req.Reason).Valid() {
		writeError(w, http.StatusBadRequest, "invalid report reason")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Report submitted",
	})
}

// ---- profile & dashboard ----

func (s *Server) handleMyProfile(w http.ResponseWriter, r *http.Request) {
	uid := userID(r.Context())
	if uid == uuid.Nil {
		writeError(w, http.StatusUnauthorized, "Please login first")
		return
	}

	p, err := s.store.profile(uid, uid)
	if err != nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleUserProfile(w http.ResponseWriter, r *http.Request) {
	target, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	p, err := s.store.profile(target, userID(r.Context()))
	if err != nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	uid := userID(r.Context())
	if uid == uuid.Nil {
		writeError(w, http.StatusUnauthorized, "Please login first")
		return
	}

	writeJSON(w, http.StatusOK, s.store.dashboard(uid))
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
