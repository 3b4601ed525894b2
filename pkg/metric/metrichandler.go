package metric

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zdnscloud/cement/log"

	"github.com/linkingthing/named-probe/config"
)

type MetricHandler struct {
	metricPort uint32
	exporter   *Exporter
}

func NewHandler(conf *config.ProbeConfig) *MetricHandler {
	return &MetricHandler{metricPort: conf.Exporter.Port, exporter: NewExporter(conf)}
}

func (h *MetricHandler) Run() {
	prometheus.MustRegister(h.exporter)
	http.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(":"+strconv.Itoa(int(h.metricPort)), nil); err != nil {
		log.Fatalf(err.Error())
	}
}
