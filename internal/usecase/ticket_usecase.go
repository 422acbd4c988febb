package usecase

import (
	"context"
	"io"

	"casaok/internal/domain/entity"
	"casaok/internal/domain/repository"
	apperrors "casaok/pkg/errors"
	"casaok/pkg/logger"
)

type TicketUseCase struct {
	ticketRepo   repository.TicketRepository
	quoteRepo    repository.QuoteRepository
	propertyRepo repository.PropertyRepository
	catalogRepo  repository.ServiceCatalogRepository
	storage      PhotoStorage
}

func NewTicketUseCase(
	ticketRepo repository.TicketRepository,
	quoteRepo repository.QuoteRepository,
	propertyRepo repository.PropertyRepository,
	catalogRepo repository.ServiceCatalogRepository,
	storage PhotoStorage,
) *TicketUseCase {
	return &TicketUseCase{
		ticketRepo:   ticketRepo,
		quoteRepo:    quoteRepo,
		propertyRepo: propertyRepo,
		catalogRepo:  catalogRepo,
		storage:      storage,
	}
}

type PhotoInput struct {
	Reader      io.Reader
	ContentType string
}

type CreateTicketInput struct {
	OwnerUID    string
	PropertyID  string
	ServiceType string
	Title       string
	Description string
	Priority    string
	Photos      []PhotoInput

	UsedAdHocAddress bool
	AdHocAddress     *entity.Address
}

// IsCovered decides whether serviceType is included in the plan. It is
// false unless the plan exists and is active, the catalog has an entry
// whose name matches serviceType exactly, and that entry lists planID.
func (uc *TicketUseCase) IsCovered(ctx context.Context, serviceType, planID, planStatus string) (bool, error) {
	if planID == "" || planStatus != entity.PlanStatusAtivo {
		return false, nil
	}

	entry, err := uc.catalogRepo.GetByName(ctx, serviceType)
	if err != nil {
		return false, err
	}
	if entry == nil {
		return false, nil
	}

	return entry.Covers(planID), nil
}

// CreateTicket uploads the photos, resolves plan coverage and persists the
// ticket, plus a companion quote when the service is not covered. There is
// no transaction across the steps: a quote-write failure after the ticket
// write propagates and leaves the ticket in place.
func (uc *TicketUseCase) CreateTicket(ctx context.Context, input CreateTicketInput) (string, error) {
	if input.Priority != entity.PriorityNormal && input.Priority != entity.PriorityUrgente {
		return "", apperrors.BadRequest("Priority must be normal or urgente", nil)
	}

	var planID, planStatus string
	if input.PropertyID != "" {
		property, err := uc.propertyRepo.GetByID(ctx, input.PropertyID)
		if err != nil && !apperrors.Is(err, "NOT_FOUND") {
			return "", err
		}
		if property != nil {
			planID = property.PlanID
			planStatus = property.PlanStatus
		}
	}

	photoURLs, err := uc.uploadPhotos(ctx, input.Photos, input.OwnerUID)
	if err != nil {
		return "", err
	}

	covered, err := uc.IsCovered(ctx, input.ServiceType, planID, planStatus)
	if err != nil {
		uc.cleanupPhotos(ctx, photoURLs)
		return "", err
	}

	status := entity.TicketStatusOrcamento
	if covered {
		status = entity.TicketStatusNovo
	}

	ticket := &entity.Ticket{
		OwnerUID:       input.OwnerUID,
		PropertyID:     input.PropertyID,
		ServiceType:    input.ServiceType,
		Title:          input.Title,
		Description:    input.Description,
		Photos:         photoURLs,
		Priority:       input.Priority,
		IncludedInPlan: covered,
		Status:         status,
	}
	if input.UsedAdHocAddress && input.AdHocAddress != nil {
		ticket.UsedAdHocAddress = true
		ticket.AdHocAddress = input.AdHocAddress
	}

	if err := uc.ticketRepo.Create(ctx, ticket); err != nil {
		uc.cleanupPhotos(ctx, photoURLs)
		return "", err
	}

	if !covered {
		quote := &entity.Quote{
			TicketID:           ticket.ID,
			OwnerUID:           input.OwnerUID,
			PropertyID:         input.PropertyID,
			ServiceType:        input.ServiceType,
			DescriptionCliente: input.Description,
			EstimatedValue:     nil,
			Status:             entity.QuoteStatusAguardando,
		}
		if err := uc.quoteRepo.Create(ctx, quote); err != nil {
			return "", err
		}
	}

	return ticket.ID, nil
}

func (uc *TicketUseCase) uploadPhotos(ctx context.Context, photos []PhotoInput, ownerUID string) ([]string, error) {
	urls := []string{}
	for _, photo := range photos {
		url, err := uc.storage.UploadTicketPhoto(ctx, photo.Reader, photo.ContentType, ownerUID)
		if err != nil {
			uc.cleanupPhotos(ctx, urls)
			return nil, apperrors.Internal("Failed to upload photo", err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// cleanupPhotos is best effort: failures are logged, never propagated.
func (uc *TicketUseCase) cleanupPhotos(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := uc.storage.DeleteFile(ctx, url); err != nil {
			logger.Warn("Failed to clean up orphaned photo %s: %v", url, err)
		}
	}
}

func (uc *TicketUseCase) GetTicket(ctx context.Context, id string) (*entity.Ticket, error) {
	return uc.ticketRepo.GetByID(ctx, id)
}

func (uc *TicketUseCase) ListUserTickets(ctx context.Context, ownerUID string) ([]*entity.Ticket, error) {
	return uc.ticketRepo.ListByOwner(ctx, ownerUID)
}

func (uc *TicketUseCase) ListTickets(ctx context.Context, status string, limit, offset int) ([]*entity.Ticket, int64, error) {
	return uc.ticketRepo.List(ctx, status, limit, offset)
}
