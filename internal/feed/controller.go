package feed

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-shortform-client/internal/metrics"
	"github.com/pribylovaa/go-shortform-client/internal/models"
	"github.com/pribylovaa/go-shortform-client/pkg/log"
)

// Source — сетевые источники ленты.
// Feed — основной пагинированный; Videos — одноразовый непагинированный
// fallback. Реализуется api.Client.
type Source interface {
	Feed(ctx context.Context, page, size int) ([]models.VideoEntry, error)
	Videos(ctx context.Context) ([]models.VideoEntry, error)
}

// Observer получает снапшот списка после каждого его изменения.
// Уведомление синхронное; снапшот отвязан от внутреннего состояния
// контроллера и после вызова не меняется.
type Observer func(entries []models.VideoEntry)

// Controller владеет списком видео и курсором пагинации.
//
// Список изменяется только целиком (copy-on-write): добавление страницы
// и замена записей строят новый слайс, поэтому выданные снапшоты
// никогда не меняются под читателем.
//
// Гонка refresh-во-время-loadNext закрыта generation-фенсом: каждый
// Refresh/LoadInitial увеличивает поколение, и ответ, начатый при
// старом поколении, отбрасывается вместо «последний победил».
type Controller struct {
	mu       sync.Mutex
	src      Source
	pageSize int
	dedup    *DedupTracker
	preload  *Preloader

	entries  []models.VideoEntry
	page     int
	hasMore  bool
	inFlight bool
	gen      uint64

	observers []Observer
}

// NewController собирает контроллер. dedup и preload принадлежат этому
// экземпляру: Refresh очищает оба.
func NewController(src Source, pageSize int, dedup *DedupTracker, preload *Preloader) *Controller {
	if pageSize <= 0 {
		pageSize = 10
	}

	return &Controller{
		src:      src,
		pageSize: pageSize,
		dedup:    dedup,
		preload:  preload,
	}
}

// Subscribe регистрирует наблюдателя списка.
func (c *Controller) Subscribe(obs Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.observers = append(c.observers, obs)
}

// LoadInitial загружает нулевую страницу (с fallback-источником на случай
// отказа). Сессионное множество просмотров не трогает.
func (c *Controller) LoadInitial(ctx context.Context) error {
	return c.loadFront(ctx, false)
}

// Refresh перезагружает ленту: сбрасывает курсор на ноль, очищает
// множество просмотров и окно предзагрузки, затем грузит нулевую
// страницу. Незавершённые LoadNext фенсятся новым поколением.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.loadFront(ctx, true)
}

func (c *Controller) loadFront(ctx context.Context, clearSession bool) error {
	const op = "feed/controller/loadFront"

	lg := log.From(ctx).With("op", op)

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.inFlight = true
	if clearSession {
		c.dedup.Clear()
		c.preload.Clear()
	}
	c.mu.Unlock()

	fromFallback := false

	items, err := c.src.Feed(ctx, 0, c.pageSize)
	if err != nil {
		lg.Warn("feed page 0 failed, trying fallback", "err", err)

		items, err = c.src.Videos(ctx)
		if err != nil {
			lg.Error("fallback source failed", "err", err)
			c.finishStale(gen)
			return fmt.Errorf("%s: %w", op, err)
		}

		fromFallback = true
		metrics.FallbackLoads.Inc()
	} else {
		metrics.PagesLoaded.Inc()
	}

	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		metrics.StaleDropped.Inc()
		return nil
	}

	c.entries = append([]models.VideoEntry(nil), items...)
	c.page = 0
	// Fallback не пагинируется: дальше листать нечего.
	c.hasMore = !fromFallback && len(items) >= c.pageSize
	c.inFlight = false
	snap, obs := c.snapshotLocked()
	c.mu.Unlock()

	notify(obs, snap)
	return nil
}

// LoadNext догружает следующую страницу. No-op, пока другой запрос в
// полёте или предыдущая страница была неполной (hasMore=false).
func (c *Controller) LoadNext(ctx context.Context) error {
	const op = "feed/controller/LoadNext"

	c.mu.Lock()
	if c.inFlight || !c.hasMore {
		c.mu.Unlock()
		return nil
	}
	c.inFlight = true
	gen := c.gen
	next := c.page + 1
	c.mu.Unlock()

	items, err := c.src.Feed(ctx, next, c.pageSize)

	c.mu.Lock()
	if c.gen != gen {
		// Пока страница грузилась, случился Refresh: ответ устарел.
		c.mu.Unlock()
		metrics.StaleDropped.Inc()
		return nil
	}
	c.inFlight = false

	if err != nil {
		c.mu.Unlock()
		log.From(ctx).Warn("load next page failed", "op", op, "page", next, "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	merged := make([]models.VideoEntry, 0, len(c.entries)+len(items))
	merged = append(merged, c.entries...)
	merged = append(merged, items...)

	c.entries = merged
	c.page = next
	c.hasMore = len(items) >= c.pageSize
	snap, obs := c.snapshotLocked()
	c.mu.Unlock()

	metrics.PagesLoaded.Inc()
	notify(obs, snap)
	return nil
}

// Update применяет apply к каждой записи (fan-out) и заменяет список
// новым значением, если хоть одна запись изменилась. Возвращает число
// изменённых записей. Наблюдатели уведомляются синхронно.
func (c *Controller) Update(apply func(models.VideoEntry) (models.VideoEntry, bool)) int {
	c.mu.Lock()

	changed := 0
	next := make([]models.VideoEntry, len(c.entries))
	for i, e := range c.entries {
		if ne, ok := apply(e); ok {
			next[i] = ne
			changed++
		} else {
			next[i] = e
		}
	}

	if changed == 0 {
		c.mu.Unlock()
		return 0
	}

	c.entries = next
	snap, obs := c.snapshotLocked()
	c.mu.Unlock()

	notify(obs, snap)
	return changed
}

// Entry — запись по id.
func (c *Controller) Entry(id uuid.UUID) (models.VideoEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.VideoEntry{}, false
}

// Find — первая запись, удовлетворяющая предикату.
func (c *Controller) Find(pred func(models.VideoEntry) bool) (models.VideoEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if pred(e) {
			return e, true
		}
	}
	return models.VideoEntry{}, false
}

// Snapshot — копия текущего списка.
func (c *Controller) Snapshot() []models.VideoEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]models.VideoEntry(nil), c.entries...)
}

// Len — длина текущего списка.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// HasMore — остались ли страницы у основного источника.
func (c *Controller) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hasMore
}

// finishStale снимает inFlight, только если поколение не ушло вперёд.
func (c *Controller) finishStale(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen == gen {
		c.inFlight = false
	}
}

// snapshotLocked — копии списка и наблюдателей; вызывается под mu.
func (c *Controller) snapshotLocked() ([]models.VideoEntry, []Observer) {
	snap := append([]models.VideoEntry(nil), c.entries...)
	obs := append([]Observer(nil), c.observers...)
	return snap, obs
}

func notify(obs []Observer, snap []models.VideoEntry) {
	for _, o := range obs {
		o(snap)
	}
}
