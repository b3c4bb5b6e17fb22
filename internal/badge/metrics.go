package badge

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for badge rendering.
type Metrics struct {
	// Render outcomes: done, template_not_found, capacity, merge, invalid_input, canceled, error
	RenderOutcome *prometheus.CounterVec

	// Renders that went out without a portrait
	PortraitSkipped prometheus.Counter

	RenderLatency prometheus.Histogram
}

// NewMetrics registers the badge metrics with reg, or with the default
// registerer when reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		RenderOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "koa_badge_renders_total",
			Help: "Total badge renders by outcome",
		}, []string{"outcome"}),

		PortraitSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "koa_badge_portrait_skipped_total",
			Help: "Badges rendered without a portrait because the photo was missing or unusable",
		}),

		RenderLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "koa_badge_render_duration_seconds",
			Help:    "Duration of a full badge render",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// ObserveRender records one finished render.
func (m *Metrics) ObserveRender(err error, states []State, d time.Duration) {
	if m == nil {
		return
	}
	m.RenderOutcome.WithLabelValues(outcome(err)).Inc()
	m.RenderLatency.Observe(d.Seconds())
	for _, s := range states {
		if s == StatePortraitSkipped {
			m.PortraitSkipped.Inc()
			break
		}
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "done"
	case errors.Is(err, ErrTemplateNotFound):
		return "template_not_found"
	case errors.Is(err, ErrCapacity):
		return "capacity"
	case errors.Is(err, ErrMerge):
		return "merge"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "error"
}
