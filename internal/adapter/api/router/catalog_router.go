package router

import (
	"github.com/labstack/echo/v4"

	"casaok/internal/adapter/api/handler"
	"casaok/internal/adapter/api/middleware"
	"casaok/internal/domain/entity"
)

func SetupCatalogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	catalogHandler := handler.GetCatalogHandler()

	e.GET("/v1/services", catalogHandler.List)

	admin := e.Group("/v1/admin/services")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.Require(entity.RoleAdmin))
	admin.POST("", catalogHandler.Create)
}
