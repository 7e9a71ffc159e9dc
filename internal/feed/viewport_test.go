package feed

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-shortform-client/internal/models"
	"github.com/pribylovaa/go-shortform-client/mocks"
)

// Тесты трекера видимости (viewport.go):
//  - инвариант одного активного: play получает только активный хэндл,
//    каждому неактивному — ровно один pause + seek-to-start;
//  - просмотр записывается один раз на видео за сеанс, повторный сигнал
//    просмотра не переотправляет;
//  - TogglePlayPause действует только на активный хэндл;
//  - mute — общий флаг: применяется ко всем хэндлам и к новым при Mount.

// nopRecorder — заглушка для тестов, где запись просмотров не предмет
// проверки: fire-and-forget горутина не должна зависеть от времени
// жизни gomock-контроллера.
type nopRecorder struct{}

func (nopRecorder) RecordView(context.Context, uuid.UUID, time.Duration, bool) error {
	return nil
}

func newViewportForTest(t *testing.T, ctrl *gomock.Controller, recorder ViewRecorder) *Viewport {
	t.Helper()

	dedup := NewDedupTracker()
	preload := NewPreloader(3, 10, nil)
	list := NewController(mocks.NewMockSource(ctrl), 10, dedup, preload)
	return NewViewport(list, dedup, preload, recorder)
}

// TestHandleVisibility_SingleActivePlayer — play только активному,
// остальным pause + seek.
func TestHandleVisibility_SingleActivePlayer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorded := make(chan struct{})
	recorder := mocks.NewMockViewRecorder(ctrl)
	recorder.EXPECT().
		RecordView(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID, time.Duration, bool) error {
			close(recorded)
			return nil
		})

	v := newViewportForTest(t, ctrl, recorder)
	ctx := context.Background()

	players := make([]*mocks.MockPlayer, 3)
	for i := range players {
		players[i] = mocks.NewMockPlayer(ctrl)
		v.Mount(ctx, i, players[i])
	}

	players[0].EXPECT().Pause(gomock.Any()).Return(nil)
	players[0].EXPECT().SeekStart(gomock.Any()).Return(nil)
	players[2].EXPECT().Pause(gomock.Any()).Return(nil)
	players[2].EXPECT().SeekStart(gomock.Any()).Return(nil)
	players[1].EXPECT().Play(gomock.Any()).Return(nil)

	v.HandleVisibility(ctx, VisibilityEvent{Index: 1, Entry: models.VideoEntry{ID: uuid.New()}})

	require.Equal(t, 1, v.ActiveIndex())
	require.False(t, v.Paused())

	select {
	case <-recorded:
	case <-time.After(time.Second):
		t.Fatal("view was not recorded")
	}
}

// TestHandleVisibility_RecordsViewOnce — повторный сигнал того же видео
// не переотправляет просмотр (EXPECT задан ровно один раз).
func TestHandleVisibility_RecordsViewOnce(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entry := models.VideoEntry{ID: uuid.New()}

	recorded := make(chan struct{})
	recorder := mocks.NewMockViewRecorder(ctrl)
	recorder.EXPECT().
		RecordView(gomock.Any(), entry.ID, time.Duration(0), false).
		DoAndReturn(func(context.Context, uuid.UUID, time.Duration, bool) error {
			close(recorded)
			return nil
		})

	v := newViewportForTest(t, ctrl, recorder)
	ctx := context.Background()

	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().Play(gomock.Any()).Return(nil).Times(2)
	v.Mount(ctx, 0, player)

	v.HandleVisibility(ctx, VisibilityEvent{Index: 0, Entry: entry})

	select {
	case <-recorded:
	case <-time.After(time.Second):
		t.Fatal("view was not recorded")
	}

	// Повторный сигнал: play повторяется, просмотр — нет.
	v.HandleVisibility(ctx, VisibilityEvent{Index: 0, Entry: entry})
}

// TestTogglePlayPause_ActiveOnly — пауза трогает только активный хэндл
// и сбрасывается при переключении на другое видео.
func TestTogglePlayPause_ActiveOnly(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v := newViewportForTest(t, ctrl, nopRecorder{})
	ctx := context.Background()

	active := mocks.NewMockPlayer(ctrl)
	other := mocks.NewMockPlayer(ctrl)
	v.Mount(ctx, 0, active)
	v.Mount(ctx, 1, other)

	active.EXPECT().Play(gomock.Any()).Return(nil)
	other.EXPECT().Pause(gomock.Any()).Return(nil)
	other.EXPECT().SeekStart(gomock.Any()).Return(nil)
	v.HandleVisibility(ctx, VisibilityEvent{Index: 0, Entry: models.VideoEntry{ID: uuid.New()}})

	// Пауза активного; other не трогаем.
	active.EXPECT().Pause(gomock.Any()).Return(nil)
	v.TogglePlayPause(ctx)
	require.True(t, v.Paused())

	active.EXPECT().Play(gomock.Any()).Return(nil)
	v.TogglePlayPause(ctx)
	require.False(t, v.Paused())

	// Перешли на следующее видео — пауза сброшена.
	active.EXPECT().Pause(gomock.Any()).Return(nil)
	v.TogglePlayPause(ctx)
	require.True(t, v.Paused())

	active.EXPECT().Pause(gomock.Any()).Return(nil)
	active.EXPECT().SeekStart(gomock.Any()).Return(nil)
	other.EXPECT().Play(gomock.Any()).Return(nil)
	v.HandleVisibility(ctx, VisibilityEvent{Index: 1, Entry: models.VideoEntry{ID: uuid.New()}})
	require.False(t, v.Paused())
}

// TestToggleMute_SharedAcrossHandles — mute применяется ко всем хэндлам
// и наследуется плеером, смонтированным позже.
func TestToggleMute_SharedAcrossHandles(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v := newViewportForTest(t, ctrl, nil)
	ctx := context.Background()

	first := mocks.NewMockPlayer(ctrl)
	second := mocks.NewMockPlayer(ctrl)
	v.Mount(ctx, 0, first)
	v.Mount(ctx, 1, second)

	first.EXPECT().SetMuted(gomock.Any(), true).Return(nil)
	second.EXPECT().SetMuted(gomock.Any(), true).Return(nil)
	v.ToggleMute(ctx)
	require.True(t, v.Muted())

	// Новый хэндл получает текущий флаг сразу при Mount.
	late := mocks.NewMockPlayer(ctrl)
	late.EXPECT().SetMuted(gomock.Any(), true).Return(nil)
	v.Mount(ctx, 2, late)

	first.EXPECT().SetMuted(gomock.Any(), false).Return(nil)
	second.EXPECT().SetMuted(gomock.Any(), false).Return(nil)
	late.EXPECT().SetMuted(gomock.Any(), false).Return(nil)
	v.ToggleMute(ctx)
	require.False(t, v.Muted())
}

// TestUnmount_ReleasesHandle — после Unmount хэндл не получает переходов.
func TestUnmount_ReleasesHandle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v := newViewportForTest(t, ctrl, nopRecorder{})
	ctx := context.Background()

	gone := mocks.NewMockPlayer(ctrl)
	stay := mocks.NewMockPlayer(ctrl)
	v.Mount(ctx, 0, gone)
	v.Mount(ctx, 1, stay)
	v.Unmount(0)

	stay.EXPECT().Play(gomock.Any()).Return(nil)
	v.HandleVisibility(ctx, VisibilityEvent{Index: 1, Entry: models.VideoEntry{ID: uuid.New()}})
}
