package usecase

import (
	"context"

	"casaok/internal/domain/entity"
	"casaok/internal/domain/repository"
)

type PropertyUseCase struct {
	propertyRepo repository.PropertyRepository
}

func NewPropertyUseCase(propertyRepo repository.PropertyRepository) *PropertyUseCase {
	return &PropertyUseCase{
		propertyRepo: propertyRepo,
	}
}

type CreatePropertyInput struct {
	OwnerUID string
	Label    string
	Address  entity.Address
	PlanID   string
}

// CreateProperty registers a property for the owner. Choosing a plan at
// creation leaves it pendente until the subscription is confirmed
// externally; no plan means inativo.
func (uc *PropertyUseCase) CreateProperty(ctx context.Context, input CreatePropertyInput) (*entity.Property, error) {
	planStatus := entity.PlanStatusInativo
	if input.PlanID != "" {
		planStatus = entity.PlanStatusPendente
	}

	property := &entity.Property{
		Label:      input.Label,
		Address:    input.Address,
		OwnerUID:   input.OwnerUID,
		PlanID:     input.PlanID,
		PlanStatus: planStatus,
	}

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

func (uc *PropertyUseCase) ListUserProperties(ctx context.Context, ownerUID string) ([]*entity.Property, error) {
	return uc.propertyRepo.ListByOwner(ctx, ownerUID)
}
