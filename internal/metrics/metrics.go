// metrics — счётчики Prometheus движка ленты.
// Регистрация в DefaultRegisterer; отдаются promhttp-эндпойнтом в main.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PagesLoaded — успешно загруженные страницы ленты.
	PagesLoaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feed_pages_loaded_total",
		Help: "Successfully loaded feed pages.",
	})

	// FallbackLoads — срабатывания одноразового fallback-источника.
	FallbackLoads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feed_fallback_loads_total",
		Help: "Times the unpaged fallback source was used.",
	})

	// StaleDropped — ответы пагинации, отброшенные generation-фенсом.
	StaleDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feed_stale_responses_dropped_total",
		Help: "Pagination responses discarded because a refresh advanced the generation.",
	})

	// ViewsRecorded — отправленные события просмотра.
	ViewsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feed_views_recorded_total",
		Help: "View events sent to the backend.",
	})

	// OptimisticReverts — откаты оптимистичных мутаций по типу действия.
	OptimisticReverts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "social_optimistic_reverts_total",
		Help: "Optimistic mutations reverted after confirm failure.",
	}, []string{"action"})

	// CommentsPosted — успешно отправленные комментарии.
	CommentsPosted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "comments_posted_total",
		Help: "Comments accepted by the backend.",
	})
)
