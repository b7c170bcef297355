package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/featherlane/henhouse-go/internal/domain/farm"
)

const (
	namespace = "henhouse"
	subsystem = "daemon"
)

// FarmMetricsCollector records gameplay observations from the tick loop
// and exposes them through a Prometheus registry. It implements the
// engine's MetricsRecorder port.
type FarmMetricsCollector struct {
	money           prometheus.Gauge
	feed            prometheus.Gauge
	livestock       *prometheus.GaugeVec
	readyEggs       *prometheus.GaugeVec
	eggsLaidTotal   *prometheus.CounterVec
	ordersCompleted prometheus.Counter
	ordersExpired   prometheus.Counter
	productsCooked  prometheus.Counter
	activeOrders    prometheus.Gauge
	queueDepth      prometheus.Gauge
	tickDuration    prometheus.Histogram
}

// NewFarmMetricsCollector creates the collector and registers every
// metric with the given registry.
func NewFarmMetricsCollector(registry *prometheus.Registry) *FarmMetricsCollector {
	c := &FarmMetricsCollector{
		money: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "money", Help: "Current player money",
		}),
		feed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "feed_units", Help: "Current feed stock",
		}),
		livestock: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "livestock", Help: "Bird count by kind",
		}, []string{"kind"}),
		readyEggs: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "ready_eggs", Help: "Eggs laid but not collected, by kind",
		}, []string{"kind"}),
		eggsLaidTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "eggs_laid_total", Help: "Total eggs laid by kind",
		}, []string{"kind"}),
		ordersCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "orders_completed_total", Help: "Total customer orders served",
		}),
		ordersExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "orders_expired_total", Help: "Total customer orders abandoned",
		}),
		productsCooked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "products_cooked_total", Help: "Total cooking jobs completed",
		}),
		activeOrders: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "active_orders", Help: "Orders currently at counters",
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "production_queue_depth", Help: "Cooking jobs in flight",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name:    "tick_duration_seconds",
			Help:    "Wall time spent in one engine tick",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
	}

	registry.MustRegister(
		c.money, c.feed, c.livestock, c.readyEggs, c.eggsLaidTotal,
		c.ordersCompleted, c.ordersExpired, c.productsCooked,
		c.activeOrders, c.queueDepth, c.tickDuration,
	)
	return c
}

// ObserveState refreshes the gauges from the post-tick state.
func (c *FarmMetricsCollector) ObserveState(state *farm.GameState) {
	c.money.Set(state.Money)
	c.feed.Set(state.Feed)
	c.livestock.WithLabelValues("chicken").Set(float64(state.Chickens))
	c.livestock.WithLabelValues("golden").Set(float64(state.GoldenChickens))
	c.readyEggs.WithLabelValues("egg").Set(float64(state.ReadyEggs))
	c.readyEggs.WithLabelValues("golden").Set(float64(state.ReadyGoldenEggs))
	c.activeOrders.Set(float64(len(state.ActiveOrders)))
	c.queueDepth.Set(float64(len(state.ProductionQueue)))
}

// RecordTickDuration observes one tick's wall time.
func (c *FarmMetricsCollector) RecordTickDuration(seconds float64) {
	c.tickDuration.Observe(seconds)
}

// RecordEggsLaid counts laid eggs by kind.
func (c *FarmMetricsCollector) RecordEggsLaid(count int, golden bool) {
	kind := "egg"
	if golden {
		kind = "golden"
	}
	c.eggsLaidTotal.WithLabelValues(kind).Add(float64(count))
}

// RecordOrderCompleted counts a served customer.
func (c *FarmMetricsCollector) RecordOrderCompleted() {
	c.ordersCompleted.Inc()
}

// RecordOrderExpired counts an abandoned order.
func (c *FarmMetricsCollector) RecordOrderExpired() {
	c.ordersExpired.Inc()
}

// RecordProductCompleted counts a finished cooking job.
func (c *FarmMetricsCollector) RecordProductCompleted() {
	c.productsCooked.Inc()
}
