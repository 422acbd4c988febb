package repository

import (
	"context"

	"casaok/internal/domain/entity"
)

type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, id string) (*entity.Quote, error)
	ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Quote, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Quote, int64, error)
	// UpdateStatus sets status (and the estimated value when non-nil)
	// on quotes/{id}, bumping updatedAt.
	UpdateStatus(ctx context.Context, id, status string, estimatedValue *float64) error
}
