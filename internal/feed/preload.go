package feed

import (
	"sync"

	"github.com/pribylovaa/go-shortform-client/internal/models"
)

// Preloader ведёт окно предзагрузки: media-локаторы ближайших ahead
// записей впереди активной. Локаторы, отставшие от активного индекса
// больше чем на behind записей, вытесняются — окно ограничено и не
// растёт вместе со скроллом.
type Preloader struct {
	mu     sync.Mutex
	ahead  int
	behind int
	// window: локатор -> индекс записи, при котором он был добавлен.
	window map[string]int
	warm   func(uri string)
}

// NewPreloader создаёт окно предзагрузки. warm вызывается один раз при
// первом добавлении локатора (медиа-подсистема начинает прогрев);
// nil-колбэк допустим.
func NewPreloader(ahead, behind int, warm func(uri string)) *Preloader {
	if ahead <= 0 {
		ahead = 3
	}
	if behind <= 0 {
		behind = 10
	}

	return &Preloader{
		ahead:  ahead,
		behind: behind,
		window: make(map[string]int),
		warm:   warm,
	}
}

// Advance пересчитывает окно для нового активного индекса.
// Добавляются локаторы следующих ahead записей; всё, что было добавлено
// при индексе < active-behind, вытесняется.
func (p *Preloader) Advance(active int, entries []models.VideoEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := 1; i <= p.ahead; i++ {
		next := active + i
		if next >= len(entries) {
			break
		}

		uri := entries[next].VideoURL
		if uri == "" {
			continue
		}

		if _, ok := p.window[uri]; !ok && p.warm != nil {
			p.warm(uri)
		}
		p.window[uri] = next
	}

	for uri, at := range p.window {
		if at < active-p.behind {
			delete(p.window, uri)
		}
	}
}

// Contains — находится ли локатор в окне.
func (p *Preloader) Contains(uri string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, ok := p.window[uri]
	return ok
}

// Snapshot — копия текущего окна.
func (p *Preloader) Snapshot() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	uris := make([]string, 0, len(p.window))
	for uri := range p.window {
		uris = append(uris, uri)
	}
	return uris
}

// Clear сбрасывает окно (вместе с Refresh ленты).
func (p *Preloader) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.window = make(map[string]int)
}
