package router

import (
	"github.com/labstack/echo/v4"

	"casaok/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware, roleMiddleware)
	SetupPropertyRouter(e, authMiddleware, rateLimitMiddleware)
	SetupTicketRouter(e, authMiddleware, roleMiddleware, rateLimitMiddleware)
	SetupQuoteRouter(e, authMiddleware, roleMiddleware)
	SetupCatalogRouter(e, authMiddleware, roleMiddleware)
	SetupPlanRouter(e)
	SetupHealthRouter(e)
}
