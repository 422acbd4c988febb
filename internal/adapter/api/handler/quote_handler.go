package handler

import (
	"github.com/labstack/echo/v4"

	"casaok/internal/usecase"
	apperrors "casaok/pkg/errors"
	"casaok/pkg/response"
	"casaok/pkg/utils"
)

type QuoteHandler struct {
	quoteUseCase *usecase.QuoteUseCase
}

func NewQuoteHandler(quoteUseCase *usecase.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{
		quoteUseCase: quoteUseCase,
	}
}

type sendQuoteRequest struct {
	EstimatedValue float64 `json:"estimated_value" validate:"required,gt=0"`
}

func (h *QuoteHandler) ListMine(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return response.Error(c, apperrors.Unauthorized("Authentication required", nil))
	}

	quotes, err := h.quoteUseCase.ListUserQuotes(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, quotes)
}

func (h *QuoteHandler) ListAll(c echo.Context) error {
	status := c.QueryParam("status")
	params := utils.GetPaginationParams(c)

	quotes, total, err := h.quoteUseCase.ListQuotes(c.Request().Context(), status, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, quotes, total, params.Page, params.PageSize)
}

// Send attaches the estimated value and releases the quote to the client.
func (h *QuoteHandler) Send(c echo.Context) error {
	var req sendQuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	quote, err := h.quoteUseCase.SendQuote(c.Request().Context(), c.Param("id"), req.EstimatedValue)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, quote)
}

func (h *QuoteHandler) Approve(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return response.Error(c, apperrors.Unauthorized("Authentication required", nil))
	}

	quote, err := h.quoteUseCase.ApproveQuote(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, quote)
}

func (h *QuoteHandler) Reject(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return response.Error(c, apperrors.Unauthorized("Authentication required", nil))
	}

	quote, err := h.quoteUseCase.RejectQuote(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, quote)
}
