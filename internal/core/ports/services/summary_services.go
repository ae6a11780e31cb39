package services

import (
	"context"

	"github.com/vantage-fin/vantage/internal/core/domain"
)

// SummarySvcFacade computes the dashboard read-model.
type SummarySvcFacade interface {
	GetSummary(ctx context.Context, userID string) (*domain.Summary, error)
}
