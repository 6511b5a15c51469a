// Package telemetry records tool call metrics through OpenTelemetry.
//
// When export is disabled the recorder is backed by a no-op meter provider,
// so callers never need to check whether metrics are on.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/ironsheep/color-tools-mcp/internal/version"
)

const serviceName = "color-tools-mcp"

// Recorder records per-tool call counts, failures and latency.
type Recorder struct {
	calls    metric.Int64Counter
	errors   metric.Int64Counter
	duration metric.Float64Histogram
	shutdown func(context.Context) error
}

// New returns a recorder exporting over OTLP/gRPC when cfg enables it, and a
// no-op recorder otherwise.
func New(ctx context.Context, cfg config.Telemetry) (*Recorder, error) {
	if !cfg.Enabled {
		return Noop(), nil
	}
	if cfg.Endpoint == "" {
		return nil, errors.New("telemetry endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts,
			otlpmetricgrpc.WithInsecure(),
			otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		)
	}
	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(version.Version),
	))
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	r, err := NewWithProvider(provider)
	if err != nil {
		return nil, err
	}
	r.shutdown = provider.Shutdown
	return r, nil
}

// Noop returns a recorder that discards everything.
func Noop() *Recorder {
	r, _ := NewWithProvider(noop.NewMeterProvider())
	return r
}

// NewWithProvider builds the instruments on an existing meter provider.
func NewWithProvider(mp metric.MeterProvider) (*Recorder, error) {
	meter := mp.Meter(serviceName)

	calls, err := meter.Int64Counter(
		"color_mcp_tool_calls_total",
		metric.WithDescription("Total tool calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating calls counter: %w", err)
	}
	errs, err := meter.Int64Counter(
		"color_mcp_tool_errors_total",
		metric.WithDescription("Tool calls that returned an error"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating errors counter: %w", err)
	}
	duration, err := meter.Float64Histogram(
		"color_mcp_tool_duration_seconds",
		metric.WithDescription("Tool call latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return &Recorder{
		calls:    calls,
		errors:   errs,
		duration: duration,
		shutdown: func(context.Context) error { return nil },
	}, nil
}

// RecordCall records one completed tool call.
func (r *Recorder) RecordCall(ctx context.Context, tool string, elapsed time.Duration, err error) {
	opt := metric.WithAttributes(attribute.String("tool", tool))
	r.calls.Add(ctx, 1, opt)
	r.duration.Record(ctx, elapsed.Seconds(), opt)
	if err != nil {
		r.errors.Add(ctx, 1, opt)
	}
}

// Shutdown flushes pending metrics.
func (r *Recorder) Shutdown(ctx context.Context) error {
	return r.shutdown(ctx)
}
