// comments — цикл fetch/post двухуровневого дерева комментариев,
// привязанного к одному видео.
//
// Post пессимистичен: после подтверждения сервера дерево целиком
// перечитывается, локальная вставка не выполняется. Отказ отправки
// возвращается вызывающему — введённый текст остаётся у него и может
// быть отправлен повторно.
package comments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-shortform-client/internal/metrics"
	"github.com/pribylovaa/go-shortform-client/internal/models"
	"github.com/pribylovaa/go-shortform-client/pkg/log"
)

var (
	// ErrEmptyContent — пустой (после TrimSpace) текст комментария.
	ErrEmptyContent = errors.New("empty content")
)

// API — сетевой контракт комментариев. Реализуется api.Client.
type API interface {
	Comments(ctx context.Context, videoID uuid.UUID, nested bool) ([]models.CommentNode, error)
	AddComment(ctx context.Context, videoID uuid.UUID, content string, parentID uuid.UUID) (*models.CommentNode, error)
}

// Store кэширует последнее загруженное дерево по видео. Кэш нужен,
// чтобы при ответе на ответ схлопнуть адресата до корневого
// комментария: глубже второго уровня узлы не адресуются.
type Store struct {
	mu    sync.Mutex
	api   API
	trees map[uuid.UUID][]models.CommentNode
}

func NewStore(api API) *Store {
	return &Store{
		api:   api,
		trees: make(map[uuid.UUID][]models.CommentNode),
	}
}

// Fetch загружает полное двухуровневое дерево. Пустое дерево — валидное
// терминальное состояние («комментариев пока нет»), не ошибка.
func (s *Store) Fetch(ctx context.Context, videoID uuid.UUID) ([]models.CommentNode, error) {
	const op = "comments/store/Fetch"

	nodes, err := s.api.Comments(ctx, videoID, true)
	if err != nil {
		log.From(ctx).Warn("fetch comments failed", "op", op, "video_id", videoID.String(), "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.trees[videoID] = nodes
	s.mu.Unlock()

	return nodes, nil
}

// Post отправляет комментарий и после подтверждения перечитывает
// дерево. parentID == uuid.Nil создаёт корневой комментарий; ответ на
// ответ адресуется корню его ветки (resolveParent).
func (s *Store) Post(ctx context.Context, videoID uuid.UUID, content string, parentID uuid.UUID) ([]models.CommentNode, error) {
	const op = "comments/store/Post"

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyContent)
	}

	parentID = s.resolveParent(videoID, parentID)

	if _, err := s.api.AddComment(ctx, videoID, content, parentID); err != nil {
		log.From(ctx).Warn("post comment failed", "op", op, "video_id", videoID.String(), "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.CommentsPosted.Inc()

	// Подтверждённый комментарий приходит вместе со свежим деревом,
	// а не вставляется локально.
	return s.Fetch(ctx, videoID)
}

// Tree — последнее загруженное дерево из кэша (без сети).
func (s *Store) Tree(videoID uuid.UUID) []models.CommentNode {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.trees[videoID]
}

// resolveParent схлопывает адресата до корневого комментария: если
// parentID оказался ответом, возвращается id его корня. Неизвестный
// id остаётся как есть — рассудит сервер.
func (s *Store) resolveParent(videoID, parentID uuid.UUID) uuid.UUID {
	if parentID == uuid.Nil {
		return parentID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, root := range s.trees[videoID] {
		if root.ID == parentID {
			return parentID
		}
		for _, reply := range root.Replies {
			if reply.ID == parentID {
				return root.ID
			}
		}
	}

	return parentID
}
