package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casaok/internal/domain/entity"
)

func TestCreatePropertyWithPlan(t *testing.T) {
	repo := newFakePropertyRepo()
	uc := NewPropertyUseCase(repo)
	ctx := context.Background()

	property, err := uc.CreateProperty(ctx, CreatePropertyInput{
		OwnerUID: "user-1",
		Label:    "Apartamento Centro",
		Address: entity.Address{
			Street:       "Av. Paulista",
			Number:       "1000",
			Neighborhood: "Bela Vista",
			City:         "São Paulo",
			State:        "SP",
			Zip:          "01310-100",
		},
		PlanID: entity.PlanCompleto,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, property.ID)
	assert.Equal(t, entity.PlanStatusPendente, property.PlanStatus, "plan stays pendente until payment is confirmed")

	stored, err := repo.GetByID(ctx, property.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apartamento Centro", stored.Label)
	assert.Equal(t, "Av. Paulista", stored.Address.Street)
	assert.Equal(t, entity.PlanCompleto, stored.PlanID)
}

func TestCreatePropertyWithoutPlan(t *testing.T) {
	uc := NewPropertyUseCase(newFakePropertyRepo())

	property, err := uc.CreateProperty(context.Background(), CreatePropertyInput{
		OwnerUID: "user-1",
		Label:    "Casa de praia",
		Address:  entity.Address{Street: "Rua da Praia", Number: "12", City: "Ubatuba", State: "SP"},
	})
	require.NoError(t, err)
	assert.Empty(t, property.PlanID)
	assert.Equal(t, entity.PlanStatusInativo, property.PlanStatus)
}

func TestListUserProperties(t *testing.T) {
	repo := newFakePropertyRepo()
	uc := NewPropertyUseCase(repo)
	ctx := context.Background()

	_, err := uc.CreateProperty(ctx, CreatePropertyInput{OwnerUID: "user-1", Label: "a", Address: entity.Address{Street: "x"}})
	require.NoError(t, err)
	_, err = uc.CreateProperty(ctx, CreatePropertyInput{OwnerUID: "user-2", Label: "b", Address: entity.Address{Street: "y"}})
	require.NoError(t, err)
	_, err = uc.CreateProperty(ctx, CreatePropertyInput{OwnerUID: "user-1", Label: "c", Address: entity.Address{Street: "z"}})
	require.NoError(t, err)

	properties, err := uc.ListUserProperties(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, properties, 2)
	for _, property := range properties {
		assert.Equal(t, "user-1", property.OwnerUID)
	}
}
