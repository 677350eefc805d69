package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/drying-index-etl/internal/domain"
	"github.com/couchcryptid/drying-index-etl/internal/observability"
)

// ReportTransformer implements Transformer by scoring observation envelopes
// into serialized location reports.
type ReportTransformer struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewTransformer creates a ReportTransformer.
func NewTransformer(logger *slog.Logger, metrics *observability.Metrics) *ReportTransformer {
	return &ReportTransformer{
		logger:  logger,
		metrics: metrics,
	}
}

// Transform parses the raw envelope, builds its location report and
// serializes it for the sink topic.
func (t *ReportTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	env, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	report := domain.BuildLocationReport(env)
	out, err := domain.SerializeLocationReport(report)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	if report.Failed() {
		t.logger.Debug("upstream observation failed",
			"location", report.Location.Key(),
			"error", report.Error,
		)
	}
	t.metrics.RecordReport(report.Failed(), conditionsOf(report), indexOf(report))

	return out, nil
}

func conditionsOf(r domain.LocationReport) string {
	if r.DryingIndex == nil {
		return ""
	}
	return r.DryingIndex.Conditions
}

func indexOf(r domain.LocationReport) int {
	if r.DryingIndex == nil {
		return 0
	}
	return r.DryingIndex.DryingIndex
}
