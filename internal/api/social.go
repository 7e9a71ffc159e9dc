package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-shortform-client/internal/models"
)

// toggleResponse — общий ответ like/follow-переключателей.
type toggleResponse struct {
	Success   bool   `json:"success"`
	Liked     bool   `json:"liked"`
	Following bool   `json:"following"`
	Message   string `json:"message"`
}

// ToggleLike переключает лайк текущего пользователя и возвращает
// состояние после переключения по версии сервера.
func (c *Client) ToggleLike(ctx context.Context, videoID uuid.UUID) (bool, error) {
	var resp toggleResponse
	if err := c.doJSON(ctx, http.MethodPost, "/social/like/"+videoID.String(), nil, nil, &resp); err != nil {
		return false, err
	}

	return resp.Liked, nil
}

// LikeStatus — лайкнуто ли видео текущим пользователем.
func (c *Client) LikeStatus(ctx context.Context, videoID uuid.UUID) (bool, error) {
	var resp struct {
		Liked bool `json:"liked"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/social/like/"+videoID.String()+"/status", nil, nil, &resp); err != nil {
		return false, err
	}

	return resp.Liked, nil
}

// ToggleFollow переключает подписку на пользователя.
func (c *Client) ToggleFollow(ctx context.Context, targetUserID uuid.UUID) (bool, error) {
	var resp toggleResponse
	if err := c.doJSON(ctx, http.MethodPost, "/social/follow/"+targetUserID.String(), nil, nil, &resp); err != nil {
		return false, err
	}

	return resp.Following, nil
}

// FollowStatus — подписка и число подписчиков пользователя.
func (c *Client) FollowStatus(ctx context.Context, targetUserID uuid.UUID) (bool, int64, error) {
	var resp struct {
		Following     bool  `json:"following"`
		FollowerCount int64 `json:"followerCount"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/social/follow/"+targetUserID.String()+"/status", nil, nil, &resp); err != nil {
		return false, 0, err
	}

	return resp.Following, resp.FollowerCount, nil
}

// ShareVideo регистрирует репост. Возвращает shareLink сервера;
// пустая строка — сервер ссылку не прислал (fallback собирает вызывающий).
func (c *Client) ShareVideo(ctx context.Context, videoID uuid.UUID) (string, error) {
	var resp struct {
		ShareLink string `json:"shareLink"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/social/share/"+videoID.String(), nil, nil, &resp); err != nil {
		return "", err
	}

	return resp.ShareLink, nil
}

// reportRequest — тело жалобы.
type reportRequest struct {
	VideoID uuid.UUID `json:"videoId"`
	Reason  string    `json:"reason"`
}

// ReportVideo отправляет жалобу с причиной из фиксированного набора.
func (c *Client) ReportVideo(ctx context.Context, videoID uuid.UUID, reason models.ReportReason) error {
	return c.doJSON(ctx, http.MethodPost, "/report", nil, reportRequest{
		VideoID: videoID,
		Reason:  string(reason),
	}, nil)
}
