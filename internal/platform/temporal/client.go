// Package temporal dials the Temporal cluster used for durable order placement.
package temporal

import (
	"errors"

	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	"github.com/Apurer/go-gin-shop-api/internal/app/config"
	platformobservability "github.com/Apurer/go-gin-shop-api/internal/platform/observability"
)

// ErrDisabled is returned by Dial when TEMPORAL_DISABLED is set.
var ErrDisabled = errors.New("temporal disabled via TEMPORAL_DISABLED env")

// Dial connects to Temporal with tracing and structured logging wired in.
func Dial(cfg config.Config, instruments *platformobservability.Instruments, tracerName string) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, ErrDisabled
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: instruments.Tracer(tracerName),
	})
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(instruments.Logger),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}
