package capability

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/montanaflynn/stats"
)

// Analytics computes descriptive statistics over numeric input data.
type Analytics struct {
	logger *slog.Logger
}

// NewAnalytics creates an analytics adapter.
func NewAnalytics(logger *slog.Logger) *Analytics {
	return &Analytics{logger: logger.With("capability", "analytics")}
}

// Execute analyzes the numeric series supplied in options["data"].
// The command names the analysis for reporting purposes; options:
// analysis_type (default "general").
func (a *Analytics) Execute(ctx context.Context, command string, options map[string]any) (map[string]any, error) {
	data := floatSliceOption(options, "data")
	if len(data) == 0 {
		return nil, fmt.Errorf("analytics requires a non-empty numeric data option")
	}

	analysisType := stringOption(options, "analysis_type", "general")

	a.logger.Info("analyzing data", "analysis", command, "points", len(data))

	summary, err := describe(data)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	return map[string]any{
		"type":          "analytics",
		"analysis":      command,
		"analysis_type": analysisType,
		"summary":       summary,
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// describe computes the standard descriptive statistics for the series.
func describe(data []float64) (map[string]any, error) {
	series := stats.Float64Data(data)

	mean, err := series.Mean()
	if err != nil {
		return nil, err
	}
	median, err := series.Median()
	if err != nil {
		return nil, err
	}
	stddev, err := series.StandardDeviation()
	if err != nil {
		return nil, err
	}
	minimum, err := series.Min()
	if err != nil {
		return nil, err
	}
	maximum, err := series.Max()
	if err != nil {
		return nil, err
	}
	total, err := series.Sum()
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"count":  len(data),
		"mean":   mean,
		"median": median,
		"stddev": stddev,
		"min":    minimum,
		"max":    maximum,
		"sum":    total,
	}, nil
}
