// feed — движок ленты: пагинация, активный плеер, предзагрузка и
// дедупликация просмотров.
//
// Все компоненты пакета — поля одного экземпляра движка, собранного в
// main и передаваемого по ссылке; процессных глобалов нет.
package feed

import (
	"sync"

	"github.com/google/uuid"
)

// DedupTracker гарантирует, что просмотр отправляется не более одного
// раза на видео за сессию. Сессия — время жизни состояния ленты между
// двумя Refresh.
type DedupTracker struct {
	mu   sync.Mutex
	seen map[uuid.UUID]struct{}
}

func NewDedupTracker() *DedupTracker {
	return &DedupTracker{seen: make(map[uuid.UUID]struct{})}
}

// Record возвращает true и запоминает id при первом вызове для этого id,
// false — при всех последующих. Запись write-once: убрать id можно
// только целиком через Clear.
func (t *DedupTracker) Record(id uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.seen[id]; ok {
		return false
	}

	t.seen[id] = struct{}{}
	return true
}

// Clear очищает множество. Вызывается только из Controller.Refresh.
func (t *DedupTracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seen = make(map[uuid.UUID]struct{})
}

// Len — размер множества (для тестов и метрик).
func (t *DedupTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.seen)
}
