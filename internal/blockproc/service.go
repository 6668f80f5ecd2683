// Package blockproc handles one streamer message end to end: it correlates
// the block's receipts, publishes the outcome and reports the processing
// through logs, metrics and a trace span.
package blockproc

import (
	"context"
	"fmt"

	"github.com/gabapcia/lakewatch/internal/blockpub"
	"github.com/gabapcia/lakewatch/internal/near"
	"github.com/gabapcia/lakewatch/internal/pkg/logger"
	"github.com/gabapcia/lakewatch/internal/pkg/telemetry"
	"github.com/gabapcia/lakewatch/internal/receiptcorr"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Service processes single blocks.
type Service interface {
	// HandleBlock correlates and publishes msg. It returns only after every
	// write for the block has completed, or with the first error, wrapped
	// with the block height.
	HandleBlock(ctx context.Context, msg near.StreamerMessage) error
}

// service wires the correlation and publishing steps together.
type service struct {
	correlator receiptcorr.Service
	publisher  blockpub.Service

	tracer  trace.Tracer
	metrics instruments
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

// HandleBlock implements Service.
func (s *service) HandleBlock(ctx context.Context, msg near.StreamerMessage) error {
	state := newBlockProcessingState(msg)

	ctx = logger.Derive(ctx,
		"processing.id", state.processingID,
		"block.height", state.height,
		"block.hash", state.hash,
	)

	ctx, span := s.tracer.Start(ctx, "blockproc.HandleBlock", trace.WithAttributes(
		attribute.String("processing.id", state.processingID),
		attribute.Int64("block.height", int64(state.height)),
		attribute.String("block.hash", state.hash),
	))
	defer span.End()

	correlation, err := s.correlator.Correlate(ctx, msg)
	if err != nil {
		return s.fail(ctx, span, &state, fmt.Errorf("failed to correlate block %d: %w", state.height, err))
	}

	state.relevant = correlation.Relevant
	span.SetAttributes(attribute.Bool("block.relevant", correlation.Relevant))

	result, err := s.publisher.Publish(ctx, msg, correlation)
	state.recordPublish(result)
	if err != nil {
		return s.fail(ctx, span, &state, fmt.Errorf("failed to publish block %d: %w", state.height, err))
	}

	state.finalizeWithSuccess()
	s.metrics.record(ctx, state)

	kv := []any{
		"block.relevant", state.relevant,
		"block.receipts_saved", state.receiptsSaved,
		"block.checkpointed", state.checkpointed,
		"processing.duration", state.duration(),
	}
	if state.relevant {
		logger.Info(ctx, "block published", kv...)
	} else {
		logger.Debug(ctx, "block processed", kv...)
	}

	return nil
}

// fail finalizes state with err and reports the failure.
func (s *service) fail(ctx context.Context, span trace.Span, state *blockProcessingState, err error) error {
	state.finalizeWithFailure(err)
	s.metrics.record(ctx, *state)

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	logger.Error(ctx, "block processing failed",
		"block.receipts_saved", state.receiptsSaved,
		"processing.duration", state.duration(),
		"error", err,
	)

	return err
}

type config struct {
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

// Option configures the service.
type Option func(*config)

// WithMeterProvider sets the provider of the processing metrics.
// Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// WithTracerProvider sets the provider of the processing spans.
// Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// New creates a block processing service running correlator then publisher
// on every block.
func New(correlator receiptcorr.Service, publisher blockpub.Service, opts ...Option) (*service, error) {
	cfg := config{
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	metrics, err := newInstruments(cfg.meterProvider.Meter(telemetry.InstrumentationName))
	if err != nil {
		return nil, err
	}

	return &service{
		correlator: correlator,
		publisher:  publisher,
		tracer:     cfg.tracerProvider.Tracer(telemetry.InstrumentationName),
		metrics:    metrics,
	}, nil
}
