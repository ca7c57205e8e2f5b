package monitoring

import (
	"context"
	"time"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upcomingEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "upcoming_events_total",
			Help: "Number of events scheduled at or after now",
		},
	)

	participationOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "participation_operations_total",
			Help: "Participation toggle operations",
		},
		[]string{"status", "result"},
	)

	eventsAuthored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_authored_total",
			Help: "Event create/update/delete operations",
		},
		[]string{"operation"},
	)

	feedRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feed_request_duration_seconds",
			Help:    "Duration of feed requests",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)
)

type Monitor struct {
	app core.App
}

func NewMonitor(app core.App) *Monitor {
	return &Monitor{app: app}
}

// Start runs the periodic collector until the context is cancelled.
func (m *Monitor) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.collectEventMetrics()
		}
	}
}

func (m *Monitor) collectEventMetrics() {
	var row struct {
		Count int `db:"count"`
	}
	now, err := types.ParseDateTime(time.Now().UTC())
	if err != nil {
		return
	}
	err = m.app.DB().NewQuery(
		"SELECT COUNT(*) AS count FROM events WHERE event_date_time >= {:now}",
	).Bind(dbx.Params{"now": now}).One(&row)
	if err != nil {
		return
	}
	upcomingEvents.Set(float64(row.Count))
}

func (m *Monitor) TrackParticipation(status, result string) {
	if m == nil {
		return
	}
	participationOps.WithLabelValues(status, result).Inc()
}

func (m *Monitor) TrackEventOp(operation string) {
	if m == nil {
		return
	}
	eventsAuthored.WithLabelValues(operation).Inc()
}

func (m *Monitor) TrackFeedRequest(duration time.Duration) {
	if m == nil {
		return
	}
	feedRequestDuration.Observe(duration.Seconds())
}
