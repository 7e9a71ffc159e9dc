package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-shortform-client/internal/models"
)

// Comments — комментарии к видео. nested=true возвращает двухуровневое
// дерево (корни с ответами), false — плоский список корней.
func (c *Client) Comments(ctx context.Context, videoID uuid.UUID, nested bool) ([]models.CommentNode, error) {
	q := url.Values{}
	q.Set("nested", strconv.FormatBool(nested))

	var nodes []models.CommentNode
	if err := c.doJSON(ctx, http.MethodGet, "/social/comments/"+videoID.String(), q, nil, &nodes); err != nil {
		return nil, err
	}

	return nodes, nil
}

// commentRequest — тело создания комментария.
// ParentID пуст для корневого комментария.
type commentRequest struct {
	VideoID  uuid.UUID `json:"videoId"`
	Content  string    `json:"content"`
	ParentID string    `json:"parentId,omitempty"`
}

// AddComment создаёт комментарий или ответ и возвращает созданный узел.
func (c *Client) AddComment(ctx context.Context, videoID uuid.UUID, content string, parentID uuid.UUID) (*models.CommentNode, error) {
	req := commentRequest{
		VideoID: videoID,
		Content: content,
	}
	if parentID != uuid.Nil {
		req.ParentID = parentID.String()
	}

	var node models.CommentNode
	if err := c.doJSON(ctx, http.MethodPost, "/social/comment", nil, req, &node); err != nil {
		return nil, err
	}

	return &node, nil
}

// DeleteComment удаляет собственный комментарий.
func (c *Client) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	return c.doJSON(ctx, http.MethodDelete, "/social/comment/"+commentID.String(), nil, nil, nil)
}
