package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casaok/internal/domain/entity"
	apperrors "casaok/pkg/errors"
)

func TestListPlans(t *testing.T) {
	uc := NewPlanUseCase()

	plans := uc.ListPlans()
	require.Len(t, plans, 3)

	ids := []string{plans[0].ID, plans[1].ID, plans[2].ID}
	assert.Equal(t, []string{entity.PlanEssencial, entity.PlanCompleto, entity.PlanSuperPremium}, ids)
	for _, plan := range plans {
		assert.True(t, plan.Active)
		assert.NotEmpty(t, plan.PaymentLink)
		assert.Greater(t, plan.Price, 0.0)
	}
}

func TestGetPlan(t *testing.T) {
	uc := NewPlanUseCase()

	plan, err := uc.GetPlan(entity.PlanCompleto)
	require.NoError(t, err)
	assert.Equal(t, "Completo", plan.Name)
	assert.Equal(t, 299.00, plan.Price)

	_, err = uc.GetPlan("platinum")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}
