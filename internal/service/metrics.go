package service

import "context"

// MetricsSummary represents aggregated verification insights.
type MetricsSummary struct {
	TotalAttempts    int64   `json:"total_attempts"`
	AcceptedAttempts int64   `json:"accepted_attempts"`
	AcceptanceRate   float64 `json:"acceptance_rate"`
	AverageDistance  float64 `json:"average_distance"`
}

// MetricsSummary aggregates the verification attempt audit log.
func (s *VerificationService) MetricsSummary(ctx context.Context) (*MetricsSummary, error) {
	aggregation, err := s.store.AggregateAttempts(ctx)
	if err != nil {
		return nil, wrapError(KindInternal, "internal error", err)
	}

	summary := &MetricsSummary{
		TotalAttempts:    aggregation.TotalCount,
		AcceptedAttempts: aggregation.AcceptedCount,
		AverageDistance:  aggregation.AverageDistance,
	}
	if aggregation.TotalCount > 0 {
		summary.AcceptanceRate = float64(aggregation.AcceptedCount) / float64(aggregation.TotalCount)
	}
	return summary, nil
}
