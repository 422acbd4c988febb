package handler

import (
	"github.com/labstack/echo/v4"

	"casaok/internal/usecase"
	apperrors "casaok/pkg/errors"
	"casaok/pkg/response"
	"casaok/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type meResponse struct {
	User      userResponse `json:"user"`
	PanelPath string       `json:"panel_path"`
}

func (h *UserHandler) GetMe(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return response.Error(c, apperrors.Unauthorized("Authentication required", nil))
	}

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, meResponse{
		User: userResponse{
			ID:          user.ID,
			FullName:    user.FullName,
			Email:       user.Email,
			Phone:       user.Phone,
			PartnerCode: user.PartnerCode,
			Role:        user.Role,
		},
		PanelPath: usecase.PanelPath(user.Role),
	})
}

func (h *UserHandler) ListPartnerClients(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return response.Error(c, apperrors.Unauthorized("Authentication required", nil))
	}

	params := utils.GetPaginationParams(c)

	clients, total, err := h.userUseCase.ListPartnerClients(c.Request().Context(), uid, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	items := make([]userResponse, 0, len(clients))
	for _, client := range clients {
		items = append(items, userResponse{
			ID:          client.ID,
			FullName:    client.FullName,
			Email:       client.Email,
			Phone:       client.Phone,
			PartnerCode: client.PartnerCode,
			Role:        client.Role,
		})
	}

	return response.Paginated(c, items, total, params.Page, params.PageSize)
}
