package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	MetricLabelNode  = "node"
	MetricLabelZone  = "zone"
	MetricLabelType  = "type"
	MetricLabelField = "field"

	MetricNameZoneCounters   = "lx_named_zone_counters"
	MetricNameZoneQueries    = "lx_named_zone_queries_total"
	MetricNameLatencySeconds = "lx_named_latency_seconds"
	MetricNameZonesTotal     = "lx_named_zones_total"
	MetricNameProcessStats   = "lx_named_process_stats"
)

var (
	NamedZoneCounters   = prometheus.NewDesc(MetricNameZoneCounters, "named counters per node,zone,type", []string{MetricLabelNode, MetricLabelZone, MetricLabelType}, nil)
	NamedZoneQueries    = prometheus.NewDesc(MetricNameZoneQueries, "named queries per node,zone", []string{MetricLabelNode, MetricLabelZone}, nil)
	NamedLatencySeconds = prometheus.NewDesc(MetricNameLatencySeconds, "probe query latency per node", []string{MetricLabelNode}, nil)
	NamedZonesTotal     = prometheus.NewDesc(MetricNameZonesTotal, "configured zones per node", []string{MetricLabelNode}, nil)
	NamedProcessStats   = prometheus.NewDesc(MetricNameProcessStats, "named process memory and threads per node,field", []string{MetricLabelNode, MetricLabelField}, nil)
)

var PrometheusDescs = []*prometheus.Desc{NamedZoneCounters, NamedZoneQueries, NamedLatencySeconds, NamedZonesTotal, NamedProcessStats}
