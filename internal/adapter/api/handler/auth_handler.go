package handler

import (
	"github.com/labstack/echo/v4"

	"casaok/internal/usecase"
	"casaok/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required,min=3"`
	Phone       string `json:"phone" validate:"omitempty"`
	PartnerCode string `json:"partner_code" validate:"omitempty"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	PartnerCode string `json:"partner_code,omitempty"`
	Role        string `json:"role"`
}

type authResponse struct {
	Token     string       `json:"token"`
	User      userResponse `json:"user"`
	PanelPath string       `json:"panel_path"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		Phone:       req.Phone,
		PartnerCode: req.PartnerCode,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, toAuthResponse(result))
}

// Login accepts an optional ?role= query parameter, mirroring the portal's
// /login?role= entry points. The requested role only applies to first-time
// sign-ins; existing profiles keep their stored role.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	requestedRole := c.QueryParam("role")

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password, requestedRole)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, toAuthResponse(result))
}

func toAuthResponse(result *usecase.AuthResult) authResponse {
	return authResponse{
		Token: result.Token,
		User: userResponse{
			ID:          result.User.ID,
			FullName:    result.User.FullName,
			Email:       result.User.Email,
			Phone:       result.User.Phone,
			PartnerCode: result.User.PartnerCode,
			Role:        result.User.Role,
		},
		PanelPath: result.PanelPath,
	}
}
