package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-shortform-client/internal/models"
)

// Feed — страница рекомендованной ленты.
// page нумеруется с нуля; порядок элементов определяет сервер.
func (c *Client) Feed(ctx context.Context, page, size int) ([]models.VideoEntry, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var items []models.VideoEntry
	if err := c.doJSON(ctx, http.MethodGet, "/feed", q, nil, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// Videos — непагинированный список видео; одноразовый fallback на случай
// недоступности ленты рекомендаций.
func (c *Client) Videos(ctx context.Context) ([]models.VideoEntry, error) {
	var items []models.VideoEntry
	if err := c.doJSON(ctx, http.MethodGet, "/videos", nil, nil, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// RecordView отправляет факт просмотра. Сервер отвечает ack без полезного тела.
func (c *Client) RecordView(ctx context.Context, videoID uuid.UUID, watched time.Duration, completed bool) error {
	q := url.Values{}
	q.Set("watchDuration", strconv.Itoa(int(watched.Seconds())))
	q.Set("completed", strconv.FormatBool(completed))

	return c.doJSON(ctx, http.MethodPost, "/feed/view/"+videoID.String(), q, nil, nil)
}
