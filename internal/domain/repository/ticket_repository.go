package repository

import (
	"context"

	"casaok/internal/domain/entity"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	GetByID(ctx context.Context, id string) (*entity.Ticket, error)
	// ListByOwner returns the owner's tickets ordered by createdAt
	// descending.
	ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Ticket, error)
	// List returns tickets across all owners, optionally filtered by
	// status, for the technician and admin panels.
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Ticket, int64, error)
}
