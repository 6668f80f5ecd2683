package blockproc

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names.
const (
	blocksProcessedMetric = "lakewatch.blocks.processed"
	receiptsMappedMetric  = "lakewatch.receipts.mapped"
	blockDurationMetric   = "lakewatch.block.duration"
)

// Processing outcome values of the "status" attribute.
const (
	statusSuccess = "success"
	statusFailure = "failure"
)

// instruments groups the metrics reported for every processed block.
type instruments struct {
	blocksProcessed metric.Int64Counter
	receiptsMapped  metric.Int64Counter
	blockDuration   metric.Float64Histogram
}

func newInstruments(meter metric.Meter) (instruments, error) {
	blocksProcessed, err := meter.Int64Counter(blocksProcessedMetric,
		metric.WithDescription("Blocks handled, by relevance and outcome."),
		metric.WithUnit("{block}"),
	)
	if err != nil {
		return instruments{}, err
	}

	receiptsMapped, err := meter.Int64Counter(receiptsMappedMetric,
		metric.WithDescription("Receipt to transaction links written."),
		metric.WithUnit("{receipt}"),
	)
	if err != nil {
		return instruments{}, err
	}

	blockDuration, err := meter.Float64Histogram(blockDurationMetric,
		metric.WithDescription("Time spent handling a block."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return instruments{}, err
	}

	return instruments{
		blocksProcessed: blocksProcessed,
		receiptsMapped:  receiptsMapped,
		blockDuration:   blockDuration,
	}, nil
}

// record reports a finalized processing state.
func (i instruments) record(ctx context.Context, state blockProcessingState) {
	status := statusSuccess
	if state.err != nil {
		status = statusFailure
	}

	attrs := metric.WithAttributes(
		attribute.Bool("relevant", state.relevant),
		attribute.String("status", status),
	)

	i.blocksProcessed.Add(ctx, 1, attrs)
	i.receiptsMapped.Add(ctx, int64(state.receiptsSaved))
	i.blockDuration.Record(ctx, state.duration().Seconds(), attrs)
}
