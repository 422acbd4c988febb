package router

import (
	"github.com/labstack/echo/v4"

	"casaok/internal/adapter/api/handler"
	"casaok/internal/adapter/api/middleware"
	"casaok/internal/domain/entity"
)

func SetupQuoteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	quoteHandler := handler.GetQuoteHandler()

	quotes := e.Group("/v1/quotes")
	quotes.Use(authMiddleware.Authenticate)

	quotes.GET("", quoteHandler.ListMine)
	quotes.POST("/:id/approve", quoteHandler.Approve)
	quotes.POST("/:id/reject", quoteHandler.Reject)

	admin := e.Group("/v1/admin/quotes")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.Require(entity.RoleAdmin))
	admin.GET("", quoteHandler.ListAll)
	admin.POST("/:id/send", quoteHandler.Send)
}
