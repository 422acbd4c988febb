package handler

import (
	"casaok/internal/usecase"
)

var (
	authHandler     *AuthHandler
	userHandler     *UserHandler
	propertyHandler *PropertyHandler
	ticketHandler   *TicketHandler
	quoteHandler    *QuoteHandler
	catalogHandler  *CatalogHandler
	planHandler     *PlanHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	propertyUseCase *usecase.PropertyUseCase,
	ticketUseCase *usecase.TicketUseCase,
	quoteUseCase *usecase.QuoteUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	planUseCase *usecase.PlanUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	propertyHandler = NewPropertyHandler(propertyUseCase)
	ticketHandler = NewTicketHandler(ticketUseCase)
	quoteHandler = NewQuoteHandler(quoteUseCase)
	catalogHandler = NewCatalogHandler(catalogUseCase)
	planHandler = NewPlanHandler(planUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetPropertyHandler() *PropertyHandler {
	return propertyHandler
}

func GetTicketHandler() *TicketHandler {
	return ticketHandler
}

func GetQuoteHandler() *QuoteHandler {
	return quoteHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetPlanHandler() *PlanHandler {
	return planHandler
}
