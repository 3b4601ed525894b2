package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/linkingthing/named-probe/config"
)

type Exporter struct {
	collector *Collector
}

func NewExporter(conf *config.ProbeConfig) *Exporter {
	resolver := NewResolver(conf)
	period := time.Duration(conf.Exporter.Period) * time.Second
	return &Exporter{collector: newCollector(resolver, conf.Exporter.Node, period)}
}

func (e *Exporter) Describe(ch chan<- *prometheus.Desc) {
	e.collector.Describe(ch)
}

func (e *Exporter) Collect(ch chan<- prometheus.Metric) {
	e.collector.Collect(ch)
}
