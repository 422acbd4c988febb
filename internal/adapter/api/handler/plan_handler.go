package handler

import (
	"github.com/labstack/echo/v4"

	"casaok/internal/usecase"
	"casaok/pkg/response"
)

type PlanHandler struct {
	planUseCase *usecase.PlanUseCase
}

func NewPlanHandler(planUseCase *usecase.PlanUseCase) *PlanHandler {
	return &PlanHandler{
		planUseCase: planUseCase,
	}
}

func (h *PlanHandler) List(c echo.Context) error {
	return response.Success(c, h.planUseCase.ListPlans())
}

func (h *PlanHandler) Get(c echo.Context) error {
	plan, err := h.planUseCase.GetPlan(c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, plan)
}
