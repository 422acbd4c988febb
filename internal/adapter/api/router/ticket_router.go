package router

import (
	"github.com/labstack/echo/v4"

	"casaok/internal/adapter/api/handler"
	"casaok/internal/adapter/api/middleware"
	"casaok/internal/domain/entity"
)

func SetupTicketRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	ticketHandler := handler.GetTicketHandler()

	tickets := e.Group("/v1/tickets")
	tickets.Use(authMiddleware.Authenticate)

	tickets.POST("", ticketHandler.Create, rateLimitMiddleware.Limit("create_ticket"))
	tickets.GET("", ticketHandler.ListMine)
	tickets.GET("/:id", ticketHandler.Get, roleMiddleware.Resolve)

	// Cross-owner listing for the technician and admin panels.
	staff := e.Group("/v1/admin/tickets")
	staff.Use(authMiddleware.Authenticate)
	staff.Use(roleMiddleware.Require(entity.RoleTecnico, entity.RoleAdmin))
	staff.GET("", ticketHandler.ListAll)
}
