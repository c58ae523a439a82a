package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and
// optional OTLP exporter. It returns a Recorder, the Prometheus HTTP
// handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "match-alerts-service"
	}

	promReader, promHandler, err := prometheusComponents()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := buildOTLPReader(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}
	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := newOtelInstruments(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}
	return rec, promHandler, shutdown, nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx               context.Context
	requests          metric.Int64Counter
	requestLatencyMs  metric.Float64Histogram
	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram
	feedMessages      metric.Int64Counter
	feedDropped       metric.Int64Counter
	feedErrors        metric.Int64Counter
	reconnects        metric.Int64Counter
	evalCycles        metric.Int64Counter
	evalErrors        metric.Int64Counter
	evalLatencyMs     metric.Float64Histogram
	evalLiveMatches   metric.Int64Histogram
	evalAlerted       metric.Int64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("match-alerts-service")
	inst := &otelInstruments{ctx: context.Background()}

	var err error
	if inst.requests, err = meter.Int64Counter("http_requests_total"); err != nil {
		return nil, err
	}
	if inst.requestLatencyMs, err = meter.Float64Histogram("http_request_duration_ms"); err != nil {
		return nil, err
	}
	if inst.providerAttempts, err = meter.Int64Counter("provider_attempts_total"); err != nil {
		return nil, err
	}
	if inst.providerErrors, err = meter.Int64Counter("provider_errors_total"); err != nil {
		return nil, err
	}
	if inst.providerLatencyMs, err = meter.Float64Histogram("provider_duration_ms"); err != nil {
		return nil, err
	}
	if inst.feedMessages, err = meter.Int64Counter("feed_messages_total"); err != nil {
		return nil, err
	}
	if inst.feedDropped, err = meter.Int64Counter("feed_messages_dropped_total"); err != nil {
		return nil, err
	}
	if inst.feedErrors, err = meter.Int64Counter("feed_message_errors_total"); err != nil {
		return nil, err
	}
	if inst.reconnects, err = meter.Int64Counter("push_reconnect_attempts_total"); err != nil {
		return nil, err
	}
	if inst.evalCycles, err = meter.Int64Counter("evaluation_cycles_total"); err != nil {
		return nil, err
	}
	if inst.evalErrors, err = meter.Int64Counter("evaluation_errors_total"); err != nil {
		return nil, err
	}
	if inst.evalLatencyMs, err = meter.Float64Histogram("evaluation_cycle_duration_ms"); err != nil {
		return nil, err
	}
	if inst.evalLiveMatches, err = meter.Int64Histogram("evaluation_live_matches"); err != nil {
		return nil, err
	}
	if inst.evalAlerted, err = meter.Int64Histogram("evaluation_alerted_matches"); err != nil {
		return nil, err
	}
	return inst, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	)
	o.requests.Add(o.ctx, 1, attrs)
	o.requestLatencyMs.Record(o.ctx, float64(duration.Milliseconds()), attrs)
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrProvider, provider))
	o.providerAttempts.Add(o.ctx, 1, attrs)
	o.providerLatencyMs.Record(o.ctx, float64(duration.Milliseconds()), attrs)
	if err != nil {
		o.providerErrors.Add(o.ctx, 1, attrs)
	}
}

func (o *otelInstruments) recordFeedMessage(messageType string, dropped bool, err error) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrMessageType, messageType))
	o.feedMessages.Add(o.ctx, 1, attrs)
	if dropped {
		o.feedDropped.Add(o.ctx, 1, attrs)
	}
	if err != nil {
		o.feedErrors.Add(o.ctx, 1, attrs)
	}
}

func (o *otelInstruments) recordReconnect() {
	if o == nil {
		return
	}
	o.reconnects.Add(o.ctx, 1)
}

func (o *otelInstruments) recordEvaluation(duration time.Duration, live, alerted int, err error) {
	if o == nil {
		return
	}
	o.evalCycles.Add(o.ctx, 1)
	o.evalLatencyMs.Record(o.ctx, float64(duration.Milliseconds()))
	o.evalLiveMatches.Record(o.ctx, int64(live))
	o.evalAlerted.Record(o.ctx, int64(alerted))
	if err != nil {
		o.evalErrors.Add(o.ctx, 1)
	}
}
