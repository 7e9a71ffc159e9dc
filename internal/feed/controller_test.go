package feed

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-shortform-client/internal/models"
	"github.com/pribylovaa/go-shortform-client/mocks"
)

// Файл unit-тестов контроллера ленты (controller.go).
//
// Покрываем ключевую бизнес-логику:
//  - LoadInitial/LoadNext:
//      * полная страница -> hasMore=true, неполная -> hasMore=false;
//      * после неполной страницы LoadNext не ходит в сеть;
//      * конкурирующий LoadNext при inFlight — no-op;
//  - fallback: отказ нулевой страницы -> Videos, дальше не листаем;
//  - отказ обоих источников -> ошибка наружу;
//  - generation-фенс: Refresh во время LoadNext отбрасывает устаревший ответ;
//  - Update: fan-out, счётчик изменённых, синхронное уведомление наблюдателей;
//  - Refresh чистит dedup и окно предзагрузки, LoadInitial — нет.

// genEntries — n записей с уникальными id и локаторами.
func genEntries(n int, prefix string) []models.VideoEntry {
	out := make([]models.VideoEntry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.VideoEntry{
			ID:       uuid.New(),
			VideoURL: fmt.Sprintf("https://cdn.test/%s-%d.mp4", prefix, i),
			Title:    fmt.Sprintf("%s %d", prefix, i),
		})
	}
	return out
}

func newCtrlForTest(t *testing.T, src Source) (*Controller, *DedupTracker, *Preloader) {
	t.Helper()

	dedup := NewDedupTracker()
	preload := NewPreloader(3, 10, nil)
	return NewController(src, 10, dedup, preload), dedup, preload
}

// TestLoadInitial_FullPage — полная страница оставляет hasMore=true.
func TestLoadInitial_FullPage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Feed(gomock.Any(), 0, 10).Return(genEntries(10, "p0"), nil)

	c, _, _ := newCtrlForTest(t, src)

	require.NoError(t, c.LoadInitial(context.Background()))
	require.Equal(t, 10, c.Len())
	require.True(t, c.HasMore())
}

// TestLoadNext_PartialPageStopsPagination — 10 + 4 элемента: после
// неполной страницы hasMore=false и третьего похода в сеть нет.
func TestLoadNext_PartialPageStopsPagination(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Feed(gomock.Any(), 0, 10).Return(genEntries(10, "p0"), nil),
		src.EXPECT().Feed(gomock.Any(), 1, 10).Return(genEntries(4, "p1"), nil),
	)

	c, _, _ := newCtrlForTest(t, src)
	ctx := context.Background()

	require.NoError(t, c.LoadInitial(ctx))
	require.NoError(t, c.LoadNext(ctx))
	require.Equal(t, 14, c.Len())
	require.False(t, c.HasMore())

	// Сеть больше не трогаем: EXPECT на третий вызов не задан.
	require.NoError(t, c.LoadNext(ctx))
	require.Equal(t, 14, c.Len())
}

// TestLoadInitial_FallbackOnError — отказ нулевой страницы уводит в
// непагинируемый fallback-источник.
func TestLoadInitial_FallbackOnError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Feed(gomock.Any(), 0, 10).Return(nil, errors.New("boom")),
		src.EXPECT().Videos(gomock.Any()).Return(genEntries(25, "all"), nil),
	)

	c, _, _ := newCtrlForTest(t, src)
	ctx := context.Background()

	require.NoError(t, c.LoadInitial(ctx))
	require.Equal(t, 25, c.Len())
	require.False(t, c.HasMore(), "fallback source is not paginated")

	require.NoError(t, c.LoadNext(ctx))
	require.Equal(t, 25, c.Len())
}

// TestLoadInitial_BothSourcesFail — ошибка всплывает наружу, список пуст.
func TestLoadInitial_BothSourcesFail(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srcErr := errors.New("network down")

	src := mocks.NewMockSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Feed(gomock.Any(), 0, 10).Return(nil, srcErr),
		src.EXPECT().Videos(gomock.Any()).Return(nil, srcErr),
	)

	c, _, _ := newCtrlForTest(t, src)

	err := c.LoadInitial(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, srcErr)
	require.Equal(t, 0, c.Len())
}

// TestRefreshDuringLoadNext_DropsStaleResponse — пока вторая страница в
// полёте, случается Refresh; её ответ отбрасывается, и в списке остаётся
// только результат Refresh.
func TestRefreshDuringLoadNext_DropsStaleResponse(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	c, _, _ := newCtrlForTest(t, src)
	ctx := context.Background()

	refreshed := genEntries(10, "fresh")

	gomock.InOrder(
		src.EXPECT().Feed(gomock.Any(), 0, 10).Return(genEntries(10, "p0"), nil),
		src.EXPECT().Feed(gomock.Any(), 1, 10).DoAndReturn(
			func(ctx context.Context, _, _ int) ([]models.VideoEntry, error) {
				// Пока страница «в полёте», пользователь дёрнул refresh.
				require.NoError(t, c.Refresh(ctx))
				return genEntries(10, "stale"), nil
			}),
		src.EXPECT().Feed(gomock.Any(), 0, 10).Return(refreshed, nil),
	)

	require.NoError(t, c.LoadInitial(ctx))
	require.NoError(t, c.LoadNext(ctx))

	snap := c.Snapshot()
	require.Len(t, snap, 10, "stale page must be dropped, not appended")
	require.Equal(t, refreshed[0].ID, snap[0].ID)
	require.True(t, c.HasMore(), "pagination state belongs to the refreshed generation")
}

// TestUpdate_FanOutAndNotify — Update меняет все подходящие записи,
// возвращает их число и синхронно уведомляет наблюдателей.
func TestUpdate_FanOutAndNotify(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := genEntries(10, "p0")
	owner := uuid.New()
	entries[2].User.ID = owner
	entries[7].User.ID = owner

	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Feed(gomock.Any(), 0, 10).Return(entries, nil)

	c, _, _ := newCtrlForTest(t, src)
	require.NoError(t, c.LoadInitial(context.Background()))

	var notified [][]models.VideoEntry
	c.Subscribe(func(snap []models.VideoEntry) {
		notified = append(notified, snap)
	})

	changed := c.Update(func(v models.VideoEntry) (models.VideoEntry, bool) {
		if v.User.ID != owner {
			return v, false
		}
		v.User.FollowedByCurrentUser = true
		return v, true
	})

	require.Equal(t, 2, changed)
	require.Len(t, notified, 1)
	require.True(t, notified[0][2].User.FollowedByCurrentUser)
	require.True(t, notified[0][7].User.FollowedByCurrentUser)
	require.False(t, notified[0][0].User.FollowedByCurrentUser)

	// Ни одна запись не изменилась — наблюдателей не дёргаем.
	changed = c.Update(func(v models.VideoEntry) (models.VideoEntry, bool) {
		return v, false
	})
	require.Equal(t, 0, changed)
	require.Len(t, notified, 1)
}

// TestRefresh_ClearsSessionState — Refresh чистит дедупликацию просмотров
// и окно предзагрузки; LoadInitial их не трогает.
func TestRefresh_ClearsSessionState(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := genEntries(10, "p0")

	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Feed(gomock.Any(), 0, 10).Return(entries, nil).Times(2)

	c, dedup, preload := newCtrlForTest(t, src)
	ctx := context.Background()

	seen := uuid.New()
	require.True(t, dedup.Record(seen))
	preload.Advance(0, entries)
	require.True(t, preload.Contains(entries[1].VideoURL))

	require.NoError(t, c.LoadInitial(ctx))
	require.Equal(t, 1, dedup.Len(), "initial load keeps session view set")

	require.NoError(t, c.Refresh(ctx))
	require.Equal(t, 0, dedup.Len())
	require.False(t, preload.Contains(entries[1].VideoURL))
	require.True(t, dedup.Record(seen), "cleared set records the id again")
}

// TestSnapshot_IsDetached — снапшот не видит последующих изменений списка.
func TestSnapshot_IsDetached(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := genEntries(3, "p0")

	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Feed(gomock.Any(), 0, 10).Return(entries, nil)

	c, _, _ := newCtrlForTest(t, src)
	require.NoError(t, c.LoadInitial(context.Background()))

	before := c.Snapshot()
	wantTitle := before[0].Title

	c.Update(func(v models.VideoEntry) (models.VideoEntry, bool) {
		v.Title = "mutated"
		return v, true
	})

	require.Equal(t, wantTitle, before[0].Title)
	require.Equal(t, "mutated", c.Snapshot()[0].Title)
}
