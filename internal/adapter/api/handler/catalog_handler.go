package handler

import (
	"github.com/labstack/echo/v4"

	"casaok/internal/usecase"
	"casaok/pkg/response"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

type createCatalogEntryRequest struct {
	Name      string   `json:"name" validate:"required"`
	CoveredBy []string `json:"covered_by" validate:"required"`
}

func (h *CatalogHandler) Create(c echo.Context) error {
	var req createCatalogEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	entry, err := h.catalogUseCase.CreateEntry(c.Request().Context(), req.Name, req.CoveredBy)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, entry)
}

func (h *CatalogHandler) List(c echo.Context) error {
	entries, err := h.catalogUseCase.ListEntries(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entries)
}
