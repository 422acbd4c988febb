package usecase

import (
	"context"

	"casaok/internal/domain/entity"
	"casaok/internal/domain/repository"
	apperrors "casaok/pkg/errors"
)

type CatalogUseCase struct {
	catalogRepo repository.ServiceCatalogRepository
}

func NewCatalogUseCase(catalogRepo repository.ServiceCatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
	}
}

func (uc *CatalogUseCase) CreateEntry(ctx context.Context, name string, coveredBy []string) (*entity.ServiceCatalogEntry, error) {
	existing, err := uc.catalogRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.BadRequest("Catalog entry with this name already exists", nil)
	}

	for _, planID := range coveredBy {
		switch planID {
		case entity.PlanEssencial, entity.PlanCompleto, entity.PlanSuperPremium:
		default:
			return nil, apperrors.BadRequest("Unknown plan id: "+planID, nil)
		}
	}

	entry := &entity.ServiceCatalogEntry{
		Name:      name,
		CoveredBy: coveredBy,
	}
	if err := uc.catalogRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (uc *CatalogUseCase) ListEntries(ctx context.Context) ([]*entity.ServiceCatalogEntry, error) {
	return uc.catalogRepo.List(ctx)
}
