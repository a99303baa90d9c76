package process

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/l-donovan/wsh/metrics"
)

var (
	spawnsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: "process",
		Name:      "spawns_total",
		Help:      "Total number of external commands spawned, by outcome.",
	}, []string{"outcome"})

	suspensionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: "process",
		Name:      "suspensions_total",
		Help:      "Total number of foreground jobs suspended via SIGTSTP.",
	})

	backgroundJobsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metrics.Namespace,
		Subsystem: "process",
		Name:      "background_jobs",
		Help:      "Number of background jobs currently running.",
	})
)

func init() {
	metrics.Registry.MustRegister(spawnsTotal, suspensionsTotal, backgroundJobsGauge)
}
