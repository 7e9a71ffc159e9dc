package social

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-shortform-client/internal/models"
	"github.com/pribylovaa/go-shortform-client/pkg/log"
)

// ToggleLike — оптимистичный лайк: флаг и счётчик меняются сразу, до
// сетевого подтверждения; при отказе восстанавливаются точные
// дотогловые значения. Ответ сервера на счётчик не влияет — серверное
// состояние приедет со следующей страницей ленты.
func (e *Engine) ToggleLike(ctx context.Context, videoID uuid.UUID) error {
	const op = "social/actions/ToggleLike"

	entry, ok := e.list.Entry(videoID)
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrUnknownVideo)
	}

	// MutationSnapshot: дотогловая пара (флаг, счётчик).
	prevLiked := entry.LikedByCurrentUser
	prevCount := entry.Stats.LikeCount

	target := !prevLiked
	nextCount := prevCount + 1
	if !target {
		nextCount = prevCount - 1
		if nextCount < 0 {
			nextCount = 0
		}
	}

	return e.do(ctx, mutation{
		action: "like",
		apply: func(v models.VideoEntry) (models.VideoEntry, bool) {
			if v.ID != videoID {
				return v, false
			}
			v.LikedByCurrentUser = target
			v.Stats.LikeCount = nextCount
			return v, true
		},
		revert: func(v models.VideoEntry) (models.VideoEntry, bool) {
			if v.ID != videoID {
				return v, false
			}
			v.LikedByCurrentUser = prevLiked
			v.Stats.LikeCount = prevCount
			return v, true
		},
		confirm: func(ctx context.Context) error {
			_, err := e.api.ToggleLike(ctx, videoID)
			return err
		},
	})
}

// ToggleFollow — оптимистичная подписка. Fan-out на весь список: флаг
// подписки меняется у каждой записи, чьим владельцем является
// targetUserID, а не только у той, что инициировала переключение.
func (e *Engine) ToggleFollow(ctx context.Context, targetUserID uuid.UUID) error {
	const op = "social/actions/ToggleFollow"

	entry, ok := e.list.Find(func(v models.VideoEntry) bool {
		return v.User.ID == targetUserID
	})
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrUnknownUser)
	}

	prev := entry.User.FollowedByCurrentUser
	target := !prev

	setFollow := func(value bool) func(models.VideoEntry) (models.VideoEntry, bool) {
		return func(v models.VideoEntry) (models.VideoEntry, bool) {
			if v.User.ID != targetUserID {
				return v, false
			}
			v.User.FollowedByCurrentUser = value
			return v, true
		}
	}

	return e.do(ctx, mutation{
		action: "follow",
		apply:  setFollow(target),
		revert: setFollow(prev),
		confirm: func(ctx context.Context) error {
			_, err := e.api.ToggleFollow(ctx, targetUserID)
			return err
		},
	})
}

// Share — fire-and-forget репост. Возвращает ссылку сервера либо
// детерминированный fallback, собранный из id видео. Отказ сети
// логируется и не всплывает; локальные счётчики не меняются —
// share-счётчик авторитетен только на сервере.
func (e *Engine) Share(ctx context.Context, videoID uuid.UUID) string {
	const op = "social/actions/Share"

	entry, ok := e.list.Entry(videoID)
	if !ok {
		entry = models.VideoEntry{ID: videoID}
	}

	link, err := e.api.ShareVideo(ctx, videoID)
	if err != nil {
		log.From(ctx).Warn("share failed", "op", op, "video_id", videoID.String(), "err", err)
		return entry.ShareLink()
	}

	if link == "" {
		return entry.ShareLink()
	}

	return link
}

// Report отправляет жалобу. Причина ограничена фиксированным набором;
// при отказе возвращается ошибка с сообщением сервера (его достаёт
// api.ServerMessage).
func (e *Engine) Report(ctx context.Context, videoID uuid.UUID, reason models.ReportReason) error {
	const op = "social/actions/Report"

	if !reason.Valid() {
		return fmt.Errorf("%s: %w: %q", op, ErrInvalidReason, reason)
	}

	if err := e.api.ReportVideo(ctx, videoID, reason); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
