package feed

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-shortform-client/internal/metrics"
	"github.com/pribylovaa/go-shortform-client/internal/models"
	"github.com/pribylovaa/go-shortform-client/pkg/log"
)

// Player — хэндл плеера одной записи ленты. Реализации асинхронны под
// капотом; порядок завершения вызовов не гарантируется.
type Player interface {
	Play(ctx context.Context) error
	Pause(ctx context.Context) error
	SeekStart(ctx context.Context) error
	SetMuted(ctx context.Context, muted bool) error
}

// ViewRecorder отправляет событие просмотра. Реализуется api.Client.
type ViewRecorder interface {
	RecordView(ctx context.Context, videoID uuid.UUID, watched time.Duration, completed bool) error
}

// VisibilityEvent — типизированный сигнал видимости: запись занимает
// не меньше порога вьюпорта (60%) и считается наиболее видимой.
type VisibilityEvent struct {
	Index int
	Entry models.VideoEntry
}

// Viewport сопоставляет сигналы видимости единственному активному
// плееру и ведёт флаги paused/muted.
//
// Инвариант: в любой момент play выдан не более чем одному хэндлу;
// всем остальным — pause + seek-to-start. Mute — один флаг на все
// хэндлы, переключение активного видео его сохраняет.
type Viewport struct {
	mu       sync.Mutex
	list     *Controller
	dedup    *DedupTracker
	preload  *Preloader
	recorder ViewRecorder

	handles map[int]Player
	active  int
	paused  bool
	muted   bool
}

// NewViewport собирает трекер. dedup и preload — те же экземпляры, что
// у контроллера: Refresh ленты очищает их для нового сеанса.
func NewViewport(list *Controller, dedup *DedupTracker, preload *Preloader, recorder ViewRecorder) *Viewport {
	return &Viewport{
		list:     list,
		dedup:    dedup,
		preload:  preload,
		recorder: recorder,
		handles:  make(map[int]Player),
		active:   -1,
	}
}

// Mount регистрирует хэндл плеера под индексом. Текущий mute-флаг
// применяется сразу, чтобы новый плеер не «выстрелил» звуком.
func (v *Viewport) Mount(ctx context.Context, index int, p Player) {
	v.mu.Lock()
	v.handles[index] = p
	muted := v.muted
	v.mu.Unlock()

	if muted {
		if err := p.SetMuted(ctx, true); err != nil {
			log.From(ctx).Warn("set muted on mount failed", "index", index, "err", err)
		}
	}
}

// Unmount снимает хэндл (запись ушла из отрисовки).
func (v *Viewport) Unmount(index int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	delete(v.handles, index)
}

// HandleVisibility — обработка сигнала видимости.
//
// Порядок эффектов: активный индекс, дедуплицированная запись
// просмотра (fire-and-forget), продвижение окна предзагрузки, затем
// переходы плееров — pause+seek всем неактивным в порядке списка,
// play активному. Повторный сигнал для уже активного индекса
// безвредно повторяет play, но просмотр не переотправляет.
func (v *Viewport) HandleVisibility(ctx context.Context, ev VisibilityEvent) {
	v.mu.Lock()
	if v.active != ev.Index {
		// Новый активный всегда стартует играющим.
		v.paused = false
	}
	v.active = ev.Index
	handles := make(map[int]Player, len(v.handles))
	for i, h := range v.handles {
		handles[i] = h
	}
	v.mu.Unlock()

	if v.dedup.Record(ev.Entry.ID) {
		// Просмотр не блокирует обработку сигнала и никогда не
		// переотправляется: членство в dedup-множестве уже зафиксировано.
		go v.recordView(context.WithoutCancel(ctx), ev.Entry.ID)
	}

	v.preload.Advance(ev.Index, v.list.Snapshot())

	lg := log.From(ctx)

	idxs := make([]int, 0, len(handles))
	for i := range handles {
		if i != ev.Index {
			idxs = append(idxs, i)
		}
	}
	sort.Ints(idxs)

	for _, i := range idxs {
		h := handles[i]
		if err := h.Pause(ctx); err != nil {
			lg.Warn("pause failed", "index", i, "err", err)
		}
		if err := h.SeekStart(ctx); err != nil {
			lg.Warn("seek failed", "index", i, "err", err)
		}
	}

	if h, ok := handles[ev.Index]; ok {
		if err := h.Play(ctx); err != nil {
			lg.Warn("play failed", "index", ev.Index, "err", err)
		}
	}
}

func (v *Viewport) recordView(ctx context.Context, id uuid.UUID) {
	if v.recorder == nil {
		return
	}

	if err := v.recorder.RecordView(ctx, id, 0, false); err != nil {
		log.From(ctx).Warn("record view failed", "video_id", id.String(), "err", err)
		return
	}

	metrics.ViewsRecorded.Inc()
}

// TogglePlayPause — ручное переключение паузы активного хэндла.
// Флаг относится только к активному видео.
func (v *Viewport) TogglePlayPause(ctx context.Context) {
	v.mu.Lock()
	v.paused = !v.paused
	paused := v.paused
	h := v.handles[v.active]
	v.mu.Unlock()

	if h == nil {
		return
	}

	var err error
	if paused {
		err = h.Pause(ctx)
	} else {
		err = h.Play(ctx)
	}
	if err != nil {
		log.From(ctx).Warn("toggle play/pause failed", "paused", paused, "err", err)
	}
}

// ToggleMute — переключение общего mute-флага; применяется ко всем
// смонтированным хэндлам.
func (v *Viewport) ToggleMute(ctx context.Context) {
	v.mu.Lock()
	v.muted = !v.muted
	muted := v.muted
	handles := make([]Player, 0, len(v.handles))
	for _, h := range v.handles {
		handles = append(handles, h)
	}
	v.mu.Unlock()

	for _, h := range handles {
		if err := h.SetMuted(ctx, muted); err != nil {
			log.From(ctx).Warn("set muted failed", "muted", muted, "err", err)
		}
	}
}

// ActiveIndex — индекс активной записи (-1, пока сигналов не было).
func (v *Viewport) ActiveIndex() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.active
}

// Paused — стоит ли активное видео на ручной паузе.
func (v *Viewport) Paused() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.paused
}

// Muted — текущее значение общего mute-флага.
func (v *Viewport) Muted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.muted
}
