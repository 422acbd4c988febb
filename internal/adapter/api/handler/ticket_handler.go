package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"casaok/internal/domain/entity"
	"casaok/internal/usecase"
	apperrors "casaok/pkg/errors"
	"casaok/pkg/response"
	"casaok/pkg/utils"
)

const (
	maxTicketPhotos   = 5
	maxPhotoSizeBytes = 5 * 1024 * 1024
)

type TicketHandler struct {
	ticketUseCase *usecase.TicketUseCase
}

func NewTicketHandler(ticketUseCase *usecase.TicketUseCase) *TicketHandler {
	return &TicketHandler{
		ticketUseCase: ticketUseCase,
	}
}

type createTicketRequest struct {
	PropertyID  string `form:"property_id" validate:"omitempty"`
	ServiceType string `form:"service_type" validate:"required"`
	Title       string `form:"title" validate:"required,min=3"`
	Description string `form:"description" validate:"required,min=10,max=1000"`
	Priority    string `form:"priority" validate:"required,oneof=normal urgente"`

	UsedAdHocAddress bool   `form:"used_ad_hoc_address"`
	Street           string `form:"street"`
	Number           string `form:"number"`
	Neighborhood     string `form:"neighborhood"`
	City             string `form:"city"`
	State            string `form:"state"`
	Zip              string `form:"zip"`
}

// Create accepts a multipart form: the ticket fields plus up to five
// photos. Photos are uploaded before the ticket is persisted.
func (h *TicketHandler) Create(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return response.Error(c, apperrors.Unauthorized("Authentication required", nil))
	}

	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.CreateTicketInput{
		OwnerUID:    uid,
		PropertyID:  req.PropertyID,
		ServiceType: req.ServiceType,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	}

	if req.UsedAdHocAddress {
		input.UsedAdHocAddress = true
		input.AdHocAddress = &entity.Address{
			Street:       req.Street,
			Number:       req.Number,
			Neighborhood: req.Neighborhood,
			City:         req.City,
			State:        req.State,
			Zip:          req.Zip,
		}
	}

	form, err := c.MultipartForm()
	if err == nil && form != nil {
		files := form.File["photos"]
		if len(files) > maxTicketPhotos {
			return response.Error(c, apperrors.BadRequest(fmt.Sprintf("At most %d photos per ticket", maxTicketPhotos), nil))
		}

		for _, file := range files {
			if file.Size > maxPhotoSizeBytes {
				return response.Error(c, apperrors.BadRequest("Photo exceeds the 5MB limit", nil))
			}
			contentType := file.Header.Get("Content-Type")
			if !isAllowedPhotoType(contentType) {
				return response.Error(c, apperrors.BadRequest("Photo format not supported", nil))
			}

			src, err := file.Open()
			if err != nil {
				return response.Error(c, apperrors.Internal("Unable to read photo", err))
			}
			defer src.Close()

			input.Photos = append(input.Photos, usecase.PhotoInput{
				Reader:      src,
				ContentType: contentType,
			})
		}
	}

	ticketID, err := h.ticketUseCase.CreateTicket(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{"ticket_id": ticketID})
}

func (h *TicketHandler) ListMine(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return response.Error(c, apperrors.Unauthorized("Authentication required", nil))
	}

	tickets, err := h.ticketUseCase.ListUserTickets(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tickets)
}

func (h *TicketHandler) Get(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return response.Error(c, apperrors.Unauthorized("Authentication required", nil))
	}

	ticket, err := h.ticketUseCase.GetTicket(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	role, _ := c.Get("role").(string)
	if ticket.OwnerUID != uid && role != entity.RoleAdmin && role != entity.RoleTecnico {
		return response.Error(c, apperrors.Forbidden("Ticket belongs to another user", nil))
	}

	return response.Success(c, ticket)
}

// ListAll serves the technician and admin panels; supports ?status= and
// pagination.
func (h *TicketHandler) ListAll(c echo.Context) error {
	status := c.QueryParam("status")
	params := utils.GetPaginationParams(c)

	tickets, total, err := h.ticketUseCase.ListTickets(c.Request().Context(), status, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, tickets, total, params.Page, params.PageSize)
}

func isAllowedPhotoType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
		return true
	}
	return false
}
