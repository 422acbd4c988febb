package repository

import (
	"context"

	"casaok/internal/domain/entity"
)

// PropertyRepository exposes no update or delete: properties are
// append-only from the portal's point of view.
type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Property, error)
}
