package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"casaok/internal/domain/entity"
	"casaok/internal/domain/repository"
	"casaok/pkg/errors"
)

type firestoreTicketRepository struct {
	client *firestore.Client
}

func NewFirestoreTicketRepository(client *firestore.Client) repository.TicketRepository {
	return &firestoreTicketRepository{
		client: client,
	}
}

func (r *firestoreTicketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	if ticket.ID == "" {
		doc := r.client.Collection("tickets").NewDoc()
		ticket.ID = doc.ID
	}

	now := time.Now()
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = now
	}
	ticket.UpdatedAt = now

	_, err := r.client.Collection("tickets").Doc(ticket.ID).Set(ctx, ticket)
	if err != nil {
		return errors.Internal("Failed to create ticket", err)
	}
	return nil
}

func (r *firestoreTicketRepository) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	doc, err := r.client.Collection("tickets").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Ticket", err)
		}
		return nil, errors.Internal("Failed to get ticket", err)
	}

	var ticket entity.Ticket
	if err := doc.DataTo(&ticket); err != nil {
		return nil, errors.Internal("Failed to parse ticket document", err)
	}
	ticket.ID = doc.Ref.ID

	return &ticket, nil
}

func (r *firestoreTicketRepository) ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Ticket, error) {
	query := r.client.Collection("tickets").
		Where("ownerUid", "==", ownerUID).
		OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var tickets []*entity.Ticket
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list tickets", err)
		}

		var ticket entity.Ticket
		if err := doc.DataTo(&ticket); err != nil {
			return nil, errors.Internal("Failed to parse ticket document", err)
		}
		ticket.ID = doc.Ref.ID
		tickets = append(tickets, &ticket)
	}

	return tickets, nil
}

func (r *firestoreTicketRepository) List(ctx context.Context, status string, limit, offset int) ([]*entity.Ticket, int64, error) {
	var query firestore.Query = r.client.Collection("tickets").Query
	if status != "" {
		query = query.Where("status", "==", status)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count tickets", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var tickets []*entity.Ticket
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list tickets", err)
		}

		var ticket entity.Ticket
		if err := doc.DataTo(&ticket); err != nil {
			return nil, 0, errors.Internal("Failed to parse ticket document", err)
		}
		ticket.ID = doc.Ref.ID
		tickets = append(tickets, &ticket)
	}

	return tickets, total, nil
}
