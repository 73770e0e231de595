// Package advisor adds optional model-generated recommendations to a result.
package advisor

import (
	"context"
	"log/slog"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

// Advisor produces recommendations for an analysis result
type Advisor interface {
	Analyze(ctx context.Context, result *models.DependencyResult) (*models.Advice, error)
}

// Enrich asks the advisor for recommendations. A failing advisor is logged
// and yields no advice; it never fails the analysis.
func Enrich(ctx context.Context, a Advisor, result *models.DependencyResult, logger *slog.Logger) *models.Advice {
	if a == nil || result == nil {
		return nil
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if n, ok := a.(interface{ Name() string }); ok {
		logger = logger.With("advisor", n.Name())
	}

	advice, err := a.Analyze(ctx, result)
	if err != nil {
		logger.Warn("advisor analysis failed", "error", err)
		return nil
	}
	logger.Debug("advice attached")
	return advice
}
