package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"casaok/internal/domain/entity"
	"casaok/internal/domain/repository"
	"casaok/pkg/errors"
)

type firestoreQuoteRepository struct {
	client *firestore.Client
}

func NewFirestoreQuoteRepository(client *firestore.Client) repository.QuoteRepository {
	return &firestoreQuoteRepository{
		client: client,
	}
}

func (r *firestoreQuoteRepository) Create(ctx context.Context, quote *entity.Quote) error {
	if quote.ID == "" {
		doc := r.client.Collection("quotes").NewDoc()
		quote.ID = doc.ID
	}

	now := time.Now()
	if quote.CreatedAt.IsZero() {
		quote.CreatedAt = now
	}
	quote.UpdatedAt = now

	_, err := r.client.Collection("quotes").Doc(quote.ID).Set(ctx, quote)
	if err != nil {
		return errors.Internal("Failed to create quote", err)
	}
	return nil
}

func (r *firestoreQuoteRepository) GetByID(ctx context.Context, id string) (*entity.Quote, error) {
	doc, err := r.client.Collection("quotes").Doc(id).Get(ctx)
	if err != nil {
		if grpcstatus.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Quote", err)
		}
		return nil, errors.Internal("Failed to get quote", err)
	}

	var quote entity.Quote
	if err := doc.DataTo(&quote); err != nil {
		return nil, errors.Internal("Failed to parse quote document", err)
	}
	quote.ID = doc.Ref.ID

	return &quote, nil
}

func (r *firestoreQuoteRepository) ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Quote, error) {
	query := r.client.Collection("quotes").
		Where("ownerUid", "==", ownerUID).
		OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var quotes []*entity.Quote
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list quotes", err)
		}

		var quote entity.Quote
		if err := doc.DataTo(&quote); err != nil {
			return nil, errors.Internal("Failed to parse quote document", err)
		}
		quote.ID = doc.Ref.ID
		quotes = append(quotes, &quote)
	}

	return quotes, nil
}

func (r *firestoreQuoteRepository) List(ctx context.Context, status string, limit, offset int) ([]*entity.Quote, int64, error) {
	var query firestore.Query = r.client.Collection("quotes").Query
	if status != "" {
		query = query.Where("status", "==", status)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count quotes", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var quotes []*entity.Quote
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list quotes", err)
		}

		var quote entity.Quote
		if err := doc.DataTo(&quote); err != nil {
			return nil, 0, errors.Internal("Failed to parse quote document", err)
		}
		quote.ID = doc.Ref.ID
		quotes = append(quotes, &quote)
	}

	return quotes, total, nil
}

func (r *firestoreQuoteRepository) UpdateStatus(ctx context.Context, id, status string, estimatedValue *float64) error {
	updates := []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: time.Now()},
	}
	if estimatedValue != nil {
		updates = append(updates, firestore.Update{Path: "estimatedValue", Value: *estimatedValue})
	}

	_, err := r.client.Collection("quotes").Doc(id).Update(ctx, updates)
	if err != nil {
		if grpcstatus.Code(err) == codes.NotFound {
			return errors.NotFound("Quote", err)
		}
		return errors.Internal("Failed to update quote", err)
	}
	return nil
}
