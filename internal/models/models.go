// models — доменные структуры клиента коротких видео.
//
// Единственное правило мутации: элементы ленты никогда не изменяются
// на месте. Любое обновление — это замена VideoEntry целиком
// (copy-on-write), поэтому читатель посреди рендера не увидит
// наполовину собранную запись.
package models

import (
	"fmt"

	"github.com/google/uuid"
)

// VideoStats — снапшот счётчиков одного видео.
// Счётчики неотрицательные; источник истинности — сервер.
type VideoStats struct {
	ViewCount    int64 `json:"viewCount"`
	LikeCount    int64 `json:"likeCount"`
	CommentCount int64 `json:"commentCount"`
	ShareCount   int64 `json:"shareCount"`
}

// UserSummary — краткая сводка о пользователе (владелец видео, автор комментария).
type UserSummary struct {
	ID                    uuid.UUID `json:"id"`
	Username              string    `json:"username"`
	AvatarURL             string    `json:"avatarUrl,omitempty"`
	FollowedByCurrentUser bool      `json:"followedByCurrentUser"`
}

// VideoEntry — один элемент ленты.
//
// ID уникален в пределах текущего списка. Score приходит от
// рекомендательного сервиса и используется только для сортировки на сервере.
type VideoEntry struct {
	ID                 uuid.UUID   `json:"id"`
	VideoURL           string      `json:"videoUrl"`
	ThumbnailURL       string      `json:"thumbnailUrl,omitempty"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	DurationSeconds    int         `json:"durationSeconds,omitempty"`
	User               UserSummary `json:"user"`
	Stats              VideoStats  `json:"stats"`
	LikedByCurrentUser bool        `json:"likedByCurrentUser"`
	CreatedAt          string      `json:"createdAt,omitempty"`
	Score              float64     `json:"score,omitempty"`
}

// ShareLink — детерминированная ссылка на видео.
// Используется как fallback, когда сервер не вернул shareLink.
func (v VideoEntry) ShareLink() string {
	return fmt.Sprintf("https://videoapp.com/video/%s", v.ID)
}

// CommentNode — узел двухуровневого дерева комментариев.
// Replies заполняется только у корневых комментариев; у ответа
// собственных ответов не бывает (дерево глубины ровно 2).
type CommentNode struct {
	ID        uuid.UUID     `json:"id"`
	Content   string        `json:"content"`
	User      UserSummary   `json:"user"`
	CreatedAt string        `json:"createdAt"`
	Replies   []CommentNode `json:"replies,omitempty"`
}

// ReportReason — фиксированный набор причин жалобы.
type ReportReason string

const (
	ReasonInappropriate ReportReason = "Inappropriate content"
	ReasonSpam          ReportReason = "Spam"
	ReasonHarassment    ReportReason = "Harassment"
	ReasonOther         ReportReason = "Other"
)

// Valid — входит ли причина в допустимый набор.
func (r ReportReason) Valid() bool {
	switch r {
	case ReasonInappropriate, ReasonSpam, ReasonHarassment, ReasonOther:
		return true
	}
	return false
}

// Profile — публичный профиль пользователя.
type Profile struct {
	ID                    uuid.UUID `json:"id"`
	Username              string    `json:"username"`
	AvatarURL             string    `json:"avatarUrl,omitempty"`
	Bio                   string    `json:"bio,omitempty"`
	FollowerCount         int64     `json:"followerCount"`
	FollowingCount        int64     `json:"followingCount"`
	VideoCount            int64     `json:"videoCount"`
	TotalLikes            int64     `json:"totalLikes"`
	FollowedByCurrentUser bool      `json:"isFollowedByCurrentUser"`
}

// VideoPerformance — строка топа видео в дашборде автора.
type VideoPerformance struct {
	VideoID        string  `json:"videoId"`
	Title          string  `json:"title"`
	Views          int64   `json:"views"`
	Likes          int64   `json:"likes"`
	Comments       int64   `json:"comments"`
	EngagementRate float64 `json:"engagementRate"`
}

// DailyStats — агрегат просмотров/лайков за день.
type DailyStats struct {
	Date  string `json:"date"`
	Views int64  `json:"views"`
	Likes int64  `json:"likes"`
}

// CreatorDashboard — агрегированная аналитика автора.
// EngagementRate = (likes + comments) / views * 100.
type CreatorDashboard struct {
	TotalViews     int64              `json:"totalViews"`
	TotalLikes     int64              `json:"totalLikes"`
	TotalComments  int64              `json:"totalComments"`
	TotalShares    int64              `json:"totalShares"`
	TotalVideos    int64              `json:"totalVideos"`
	FollowerCount  int64              `json:"followerCount"`
	EngagementRate float64            `json:"engagementRate"`
	TopVideos      []VideoPerformance `json:"topVideos,omitempty"`
	ViewsOverTime  []DailyStats       `json:"viewsOverTime,omitempty"`
}

// AccountUser — профиль, который возвращают login/register.
type AccountUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
}

// Session — авторизационная сессия клиента: токен + профиль.
// Персистится в локальном key-value хранилище и восстанавливается на старте.
type Session struct {
	Token string      `json:"token"`
	User  AccountUser `json:"user"`
}
