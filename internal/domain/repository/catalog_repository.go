package repository

import (
	"context"

	"casaok/internal/domain/entity"
)

type ServiceCatalogRepository interface {
	Create(ctx context.Context, entry *entity.ServiceCatalogEntry) error
	// GetByName does an exact, case-sensitive match on the entry name and
	// returns nil when no entry exists.
	GetByName(ctx context.Context, name string) (*entity.ServiceCatalogEntry, error)
	List(ctx context.Context) ([]*entity.ServiceCatalogEntry, error)
}
