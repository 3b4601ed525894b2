package metric

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/zdnscloud/cement/log"

	"github.com/linkingthing/named-probe/pkg/stats"
)

// Collector exposes one acquisition pipeline snapshot as Prometheus
// metrics. Triggering a stats dump on every scrape would hammer the
// daemon, so snapshots are cached for the configured period. The records
// metric is never collected here, counting records dumps every zone.
type Collector struct {
	resolver *Resolver
	node     string
	period   time.Duration

	lock     sync.Mutex
	lastNS   stats.Namespace
	lastTime time.Time
}

func newCollector(resolver *Resolver, node string, period time.Duration) *Collector {
	return &Collector{resolver: resolver, node: node, period: period}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, desc := range PrometheusDescs {
		ch <- desc
	}
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ns, err := c.snapshot()
	if err != nil {
		log.Warnf("collect named stats failed: %s", err.Error())
		return
	}

	for zone, zoneStats := range ns {
		for counter, value := range zoneStats {
			ch <- prometheus.MustNewConstMetric(NamedZoneCounters, prometheus.GaugeValue,
				value.Float(), c.node, zone, counter)
		}
		ch <- prometheus.MustNewConstMetric(NamedZoneQueries, prometheus.GaugeValue,
			float64(ns.Queries(zone)), c.node, zone)
	}
	ch <- prometheus.MustNewConstMetric(NamedZonesTotal, prometheus.GaugeValue,
		float64(ns.ZoneCount()), c.node)

	ch <- prometheus.MustNewConstMetric(NamedLatencySeconds, prometheus.GaugeValue,
		c.resolver.prober.Measure(), c.node)

	if status, ok := c.resolver.inspector.Inspect(); ok {
		ch <- prometheus.MustNewConstMetric(NamedProcessStats, prometheus.GaugeValue,
			float64(status.PID), c.node, StatPID)
		for field, value := range status.Fields {
			ch <- prometheus.MustNewConstMetric(NamedProcessStats, prometheus.GaugeValue,
				float64(value), c.node, field)
		}
	}
}

func (c *Collector) snapshot() (stats.Namespace, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.lastNS != nil && time.Since(c.lastTime) < c.period {
		return c.lastNS, nil
	}

	ns, err := c.resolver.Snapshot()
	if err != nil {
		return nil, err
	}

	c.lastNS = ns
	c.lastTime = time.Now()
	return ns, nil
}
