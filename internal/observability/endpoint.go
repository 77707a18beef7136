package observability

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/audiotools/aes5-go/internal/logging"
)

// Endpoint serves the Prometheus-compatible telemetry over HTTP. The
// endpoint is advisory tooling around the core; nothing in the core blocks
// on it.
type Endpoint struct {
	server        *http.Server
	listenAddress string
	metrics       *Metrics
}

// NewEndpoint creates a telemetry endpoint serving the given metrics on
// listenAddress.
func NewEndpoint(listenAddress string, metrics *Metrics) *Endpoint {
	return &Endpoint{
		listenAddress: listenAddress,
		metrics:       metrics,
	}
}

// Start runs the HTTP server in a separate goroutine and listens for a
// quit signal to shut down gracefully.
func (e *Endpoint) Start(wg *sync.WaitGroup, quitChan <-chan struct{}) {
	log := logging.ForService("telemetry")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(e.metrics.Registry(), promhttp.HandlerOpts{}))

	e.server = &http.Server{
		Addr:              e.listenAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("telemetry endpoint starting", "address", e.listenAddress)
		if err := e.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("telemetry HTTP server error", "error", err)
		}
	}()

	go func() {
		<-quitChan
		log.Info("stopping telemetry server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.server.Shutdown(ctx); err != nil {
			log.Error("telemetry server shutdown error", "error", err)
		}
	}()
}
