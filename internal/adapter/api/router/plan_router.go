package router

import (
	"github.com/labstack/echo/v4"

	"casaok/internal/adapter/api/handler"
)

func SetupPlanRouter(e *echo.Echo) {
	planHandler := handler.GetPlanHandler()

	e.GET("/v1/plans", planHandler.List)
	e.GET("/v1/plans/:id", planHandler.Get)
}
