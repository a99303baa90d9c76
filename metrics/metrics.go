// Package metrics holds the process-wide Prometheus registry shared by
// the packages that instrument wsh's execution path.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace is the Prometheus namespace for every wsh metric.
const Namespace = "wsh"

// Registry is the custom registry all wsh metrics register against,
// keeping the default global registry free of application metrics.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// Serve blocks, exposing Registry on addr at /metrics. Intended to run
// in its own goroutine for the lifetime of the process.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
	return http.ListenAndServe(addr, mux)
}
