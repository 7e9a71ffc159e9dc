// stubserver — локальный dev-сервер REST-контракта бэкенда коротких
// видео поверх in-memory хранилища. Нужен для разработки и ручной
// проверки клиентского движка без настоящего бэкенда; durable-слоя
// у него нет намеренно.
package stubserver

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-shortform-client/internal/models"
)

var (
	errNotFound   = errors.New("not found")
	errConflict   = errors.New("conflict")
	errBadComment = errors.New("invalid comment")
)

// account — пользователь стаба: профиль + bcrypt-хэш пароля.
type account struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash []byte
}

// video — видео вместе со счётчиками.
type video struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	VideoURL    string
	CreatedAt   time.Time

	Views    int64
	Shares   int64
	Comments int64
}

// comment — плоская запись комментария; дерево собирается на выдаче.
type comment struct {
	ID        uuid.UUID
	VideoID   uuid.UUID
	ParentID  uuid.UUID // uuid.Nil — корень
	UserID    uuid.UUID
	Content   string
	CreatedAt time.Time
}

// Store — всё состояние стаба под одним мьютексом.
type Store struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*account
	byName   map[string]uuid.UUID
	videos   map[uuid.UUID]*video
	order    []uuid.UUID // порядок создания видео
	likes    map[uuid.UUID]map[uuid.UUID]bool // userID -> videoID
	follows  map[uuid.UUID]map[uuid.UUID]bool // follower -> target
	comments []*comment
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[uuid.UUID]*account),
		byName:   make(map[string]uuid.UUID),
		videos:   make(map[uuid.UUID]*video),
		likes:    make(map[uuid.UUID]map[uuid.UUID]bool),
		follows:  make(map[uuid.UUID]map[uuid.UUID]bool),
		now:      time.Now,
	}
}

func (s *Store) createAccount(username, email string, hash []byte) (*account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[username]; ok {
		return nil, errConflict
	}

	a := &account{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	s.accounts[a.ID] = a
	s.byName[username] = a.ID
	return a, nil
}

func (s *Store) accountByName(username string) (*account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byName[username]
	if !ok {
		return nil, false
	}
	return s.accounts[id], true
}

func (s *Store) accountByID(id uuid.UUID) (*account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	return a, ok
}

func (s *Store) addVideo(ownerID uuid.UUID, title, description, url string) *video {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := &video{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		VideoURL:    url,
		CreatedAt:   s.now(),
	}
	s.videos[v.ID] = v
	s.order = append(s.order, v.ID)
	return v
}

func (s *Store) recordView(videoID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.videos[videoID]
	if !ok {
		return errNotFound
	}
	v.Views++
	return nil
}

func (s *Store) toggleLike(userID, videoID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[videoID]; !ok {
		return false, errNotFound
	}

	set := s.likes[userID]
	if set == nil {
		set = make(map[uuid.UUID]bool)
		s.likes[userID] = set
	}

	if set[videoID] {
		delete(set, videoID)
		return false, nil
	}
	set[videoID] = true
	return true, nil
}

func (s *Store) isLiked(userID, videoID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.likes[userID][videoID]
}

func (s *Store) toggleFollow(follower, target uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.follows[follower]
	if set == nil {
		set = make(map[uuid.UUID]bool)
		s.follows[follower] = set
	}

	if set[target] {
		delete(set, target)
		return false
	}
	set[target] = true
	return true
}

func (s *Store) isFollowing(follower, target uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.follows[follower][target]
}

func (s *Store) followerCount(target uuid.UUID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, set := range s.follows {
		if set[target] {
			n++
		}
	}
	return n
}

func (s *Store) recordShare(videoID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.videos[videoID]
	if !ok {
		return errNotFound
	}
	v.Shares++
	return nil
}

func (s *Store) addComment(userID, videoID, parentID uuid.UUID, content string) (*comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.videos[videoID]
	if !ok {
		return nil, errNotFound
	}

	// Ответ адресуется только корню: если parent сам оказался ответом,
	// комментарий прикрепляется к корню его ветки.
	if parentID != uuid.Nil {
		parent := s.commentByIDLocked(parentID)
		if parent == nil {
			return nil, errBadComment
		}
		if parent.ParentID != uuid.Nil {
			parentID = parent.ParentID
		}
	}

	c := &comment{
		ID:        uuid.New(),
		VideoID:   videoID,
		ParentID:  parentID,
		UserID:    userID,
		Content:   content,
		CreatedAt: s.now(),
	}
	s.comments = append(s.comments, c)
	v.Comments++
	return c, nil
}

func (s *Store) deleteComment(commentID, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.comments {
		if c.ID != commentID {
			continue
		}
		if c.UserID != userID {
			return errNotFound
		}

		if v, ok := s.videos[c.VideoID]; ok && v.Comments > 0 {
			v.Comments--
		}
		s.comments = append(s.comments[:i], s.comments[i+1:]...)
		return nil
	}
	return errNotFound
}

func (s *Store) commentByIDLocked(id uuid.UUID) *comment {
	for _, c := range s.comments {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// likeCountLocked — число лайков видео; вызывается под mu.
func (s *Store) likeCountLocked(videoID uuid.UUID) int64 {
	var n int64
	for _, set := range s.likes {
		if set[videoID] {
			n++
		}
	}
	return n
}

// entry собирает VideoEntry глазами viewer (лайк/подписка).
// Вызывается под mu.
func (s *Store) entryLocked(v *video, viewer uuid.UUID) models.VideoEntry {
	owner := s.accounts[v.OwnerID]
	summary := models.UserSummary{ID: v.OwnerID}
	if owner != nil {
		summary.Username = owner.Username
	}
	if viewer != uuid.Nil {
		summary.FollowedByCurrentUser = s.follows[viewer][v.OwnerID]
	}

	entry := models.VideoEntry{
		ID:          v.ID,
		VideoURL:    v.VideoURL,
		Title:       v.Title,
		Description: v.Description,
		User:        summary,
		Stats: models.VideoStats{
			ViewCount:    v.Views,
			LikeCount:    s.likeCountLocked(v.ID),
			CommentCount: v.Comments,
			ShareCount:   v.Shares,
		},
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
	if viewer != uuid.Nil {
		entry.LikedByCurrentUser = s.likes[viewer][v.ID]
	}
	return entry
}

// feed — страница ленты, отсортированная по убыванию score.
// Score = views*1 + likes*3 + shares*5 (взвешивание рекомендаций).
func (s *Store) feed(viewer uuid.UUID, page, size int) []models.VideoEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]models.VideoEntry, 0, len(s.order))
	for _, id := range s.order {
		v := s.videos[id]
		e := s.entryLocked(v, viewer)
		e.Score = float64(e.Stats.ViewCount) + float64(e.Stats.LikeCount)*3 + float64(e.Stats.ShareCount)*5
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	from := page * size
	if from >= len(entries) {
		return []models.VideoEntry{}
	}
	to := from + size
	if to > len(entries) {
		to = len(entries)
	}
	return entries[from:to]
}

// allVideos — непагинированный список в порядке создания (fallback).
func (s *Store) allVideos(viewer uuid.UUID) []models.VideoEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]models.VideoEntry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, s.entryLocked(s.videos[id], viewer))
	}
	return entries
}

// entryByID — VideoEntry по id глазами viewer.
func (s *Store) entryByID(videoID, viewer uuid.UUID) (models.VideoEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.videos[videoID]
	if !ok {
		return models.VideoEntry{}, false
	}
	return s.entryLocked(v, viewer), true
}

// commentNode — узел комментария по id (без ответов).
func (s *Store) commentNode(id uuid.UUID) models.CommentNode {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c := s.commentByIDLocked(id); c != nil {
		return s.commentNodeLocked(c)
	}
	return models.CommentNode{}
}

// commentTree — двухуровневое дерево комментариев видео.
func (s *Store) commentTree(videoID uuid.UUID, nested bool) []models.CommentNode {
	s.mu.Lock()
	defer s.mu.Unlock()

	roots := make([]models.CommentNode, 0)
	for _, c := range s.comments {
		if c.VideoID != videoID || c.ParentID != uuid.Nil {
			continue
		}

		node := s.commentNodeLocked(c)
		if nested {
			for _, r := range s.comments {
				if r.ParentID == c.ID {
					node.Replies = append(node.Replies, s.commentNodeLocked(r))
				}
			}
		}
		roots = append(roots, node)
	}
	return roots
}

func (s *Store) commentNodeLocked(c *comment) models.CommentNode {
	user := models.UserSummary{ID: c.UserID}
	if a := s.accounts[c.UserID]; a != nil {
		user.Username = a.Username
	}

	return models.CommentNode{
		ID:        c.ID,
		Content:   c.Content,
		User:      user,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// profile — публичный профиль глазами viewer.
func (s *Store) profile(userID, viewer uuid.UUID) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[userID]
	if !ok {
		return nil, errNotFound
	}

	p := &models.Profile{
		ID:       a.ID,
		Username: a.Username,
	}

	for _, set := range s.follows {
		if set[userID] {
			p.FollowerCount++
		}
	}
	p.FollowingCount = int64(len(s.follows[userID]))

	for _, v := range s.videos {
		if v.OwnerID != userID {
			continue
		}
		p.VideoCount++
		p.TotalLikes += s.likeCountLocked(v.ID)
	}

	if viewer != uuid.Nil {
		p.FollowedByCurrentUser = s.follows[viewer][userID]
	}
	return p, nil
}

// dashboard — агрегированная аналитика по видео автора.
func (s *Store) dashboard(ownerID uuid.UUID) *models.CreatorDashboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := &models.CreatorDashboard{}
	for _, v := range s.videos {
		if v.OwnerID != ownerID {
			continue
		}

		likes := s.likeCountLocked(v.ID)
		d.TotalVideos++
		d.TotalViews += v.Views
		d.TotalLikes += likes
		d.TotalComments += v.Comments
		d.TotalShares += v.Shares

		perf := models.VideoPerformance{
			VideoID:  v.ID.String(),
			Title:    v.Title,
			Views:    v.Views,
			Likes:    likes,
			Comments: v.Comments,
		}
		if v.Views > 0 {
			perf.EngagementRate = float64(likes+v.Comments) / float64(v.Views) * 100
		}
		d.TopVideos = append(d.TopVideos, perf)
	}

	for _, set := range s.follows {
		if set[ownerID] {
			d.FollowerCount++
		}
	}

	if d.TotalViews > 0 {
		d.EngagementRate = float64(d.TotalLikes+d.TotalComments) / float64(d.TotalViews) * 100
	}

	sort.Slice(d.TopVideos, func(i, j int) bool {
		return d.TopVideos[i].Views > d.TopVideos[j].Views
	})
	if len(d.TopVideos) > 5 {
		d.TopVideos = d.TopVideos[:5]
	}
	return d
}
