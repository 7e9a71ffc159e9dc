// social — оптимистичные социальные действия над записями ленты.
//
// Единый паттерн apply-then-confirm-or-revert: локальное состояние
// меняется немедленно и синхронно уведомляет наблюдателей, сетевое
// подтверждение идёт следом; при отказе восстанавливаются точные
// значения снапшота (не инверсия), и наблюдатели уведомляются снова.
package social

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-shortform-client/internal/metrics"
	"github.com/pribylovaa/go-shortform-client/internal/models"
	"github.com/pribylovaa/go-shortform-client/pkg/log"
)

var (
	// ErrUnknownVideo — видео нет в текущем списке.
	ErrUnknownVideo = errors.New("unknown video")
	// ErrUnknownUser — в списке нет записей этого владельца.
	ErrUnknownUser = errors.New("unknown user")
	// ErrInvalidReason — причина жалобы вне допустимого набора.
	ErrInvalidReason = errors.New("invalid report reason")
)

// List — контракт списка ленты для fan-out мутаций (feed.Controller).
type List interface {
	Update(apply func(models.VideoEntry) (models.VideoEntry, bool)) int
	Entry(id uuid.UUID) (models.VideoEntry, bool)
	Find(pred func(models.VideoEntry) bool) (models.VideoEntry, bool)
}

// API — сетевые подтверждения социальных действий. Реализуется api.Client.
type API interface {
	ToggleLike(ctx context.Context, videoID uuid.UUID) (bool, error)
	ToggleFollow(ctx context.Context, targetUserID uuid.UUID) (bool, error)
	ShareVideo(ctx context.Context, videoID uuid.UUID) (string, error)
	ReportVideo(ctx context.Context, videoID uuid.UUID, reason models.ReportReason) error
}

// mutation — один оптимистичный переход.
//
// Apply и Revert — это fan-out функции над списком; Revert обязан
// восстанавливать значения снапшота, зафиксированного до Apply.
// Confirm — сетевое подтверждение.
type mutation struct {
	action  string
	apply   func(models.VideoEntry) (models.VideoEntry, bool)
	revert  func(models.VideoEntry) (models.VideoEntry, bool)
	confirm func(ctx context.Context) error
}

// Engine применяет оптимистичные мутации к списку ленты.
type Engine struct {
	list List
	api  API
}

// NewEngine собирает движок поверх списка и API-клиента.
func NewEngine(list List, api API) *Engine {
	return &Engine{list: list, api: api}
}

// do — единственная точка прохода мутации через движок. Снапшот для
// отката удерживается ровно на время confirm-запроса.
func (e *Engine) do(ctx context.Context, m mutation) error {
	const op = "social/engine/do"

	e.list.Update(m.apply)

	if err := m.confirm(ctx); err != nil {
		e.list.Update(m.revert)
		metrics.OptimisticReverts.WithLabelValues(m.action).Inc()
		log.From(ctx).Warn("optimistic mutation reverted",
			"op", op, "action", m.action, "err", err)
		return fmt.Errorf("%s: %s: %w", op, m.action, err)
	}

	return nil
}
