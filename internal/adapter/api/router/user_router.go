package router

import (
	"github.com/labstack/echo/v4"

	"casaok/internal/adapter/api/handler"
	"casaok/internal/adapter/api/middleware"
	"casaok/internal/domain/entity"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)
	users.GET("/me", userHandler.GetMe)

	partner := e.Group("/v1/partner")
	partner.Use(authMiddleware.Authenticate)
	partner.Use(roleMiddleware.Require(entity.RoleImobiliaria, entity.RoleAdmin))
	partner.GET("/clients", userHandler.ListPartnerClients)
}
