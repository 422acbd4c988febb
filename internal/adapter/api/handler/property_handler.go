package handler

import (
	"github.com/labstack/echo/v4"

	"casaok/internal/domain/entity"
	"casaok/internal/usecase"
	apperrors "casaok/pkg/errors"
	"casaok/pkg/response"
)

type PropertyHandler struct {
	propertyUseCase *usecase.PropertyUseCase
}

func NewPropertyHandler(propertyUseCase *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{
		propertyUseCase: propertyUseCase,
	}
}

type addressRequest struct {
	Street       string `json:"street" validate:"required"`
	Number       string `json:"number" validate:"required"`
	Neighborhood string `json:"neighborhood" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	Zip          string `json:"zip" validate:"required"`
}

type createPropertyRequest struct {
	Label   string         `json:"label" validate:"required"`
	Address addressRequest `json:"address" validate:"required"`
	PlanID  string         `json:"plan_id" validate:"omitempty,oneof=essencial completo super_premium"`
}

func (h *PropertyHandler) Create(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return response.Error(c, apperrors.Unauthorized("Authentication required", nil))
	}

	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	property, err := h.propertyUseCase.CreateProperty(c.Request().Context(), usecase.CreatePropertyInput{
		OwnerUID: uid,
		Label:    req.Label,
		Address: entity.Address{
			Street:       req.Address.Street,
			Number:       req.Address.Number,
			Neighborhood: req.Address.Neighborhood,
			City:         req.Address.City,
			State:        req.Address.State,
			Zip:          req.Address.Zip,
		},
		PlanID: req.PlanID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, property)
}

func (h *PropertyHandler) ListMine(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return response.Error(c, apperrors.Unauthorized("Authentication required", nil))
	}

	properties, err := h.propertyUseCase.ListUserProperties(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, properties)
}
