package router

import (
	"github.com/labstack/echo/v4"

	"casaok/internal/adapter/api/handler"
	"casaok/internal/adapter/api/middleware"
)

func SetupPropertyRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	propertyHandler := handler.GetPropertyHandler()

	properties := e.Group("/v1/properties")
	properties.Use(authMiddleware.Authenticate)

	properties.POST("", propertyHandler.Create, rateLimitMiddleware.Limit("create_property"))
	properties.GET("", propertyHandler.ListMine)
}
