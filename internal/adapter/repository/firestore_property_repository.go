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

type firestorePropertyRepository struct {
	client *firestore.Client
}

func NewFirestorePropertyRepository(client *firestore.Client) repository.PropertyRepository {
	return &firestorePropertyRepository{
		client: client,
	}
}

func (r *firestorePropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	if property.ID == "" {
		doc := r.client.Collection("properties").NewDoc()
		property.ID = doc.ID
	}

	if property.CreatedAt.IsZero() {
		property.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("properties").Doc(property.ID).Set(ctx, property)
	if err != nil {
		return errors.Internal("Failed to create property", err)
	}
	return nil
}

func (r *firestorePropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	doc, err := r.client.Collection("properties").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Property", err)
		}
		return nil, errors.Internal("Failed to get property", err)
	}

	var property entity.Property
	if err := doc.DataTo(&property); err != nil {
		return nil, errors.Internal("Failed to parse property document", err)
	}
	property.ID = doc.Ref.ID

	return &property, nil
}

func (r *firestorePropertyRepository) ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Property, error) {
	query := r.client.Collection("properties").Where("ownerUid", "==", ownerUID)
	iter := query.Documents(ctx)

	var properties []*entity.Property
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list properties", err)
		}

		var property entity.Property
		if err := doc.DataTo(&property); err != nil {
			return nil, errors.Internal("Failed to parse property document", err)
		}
		property.ID = doc.Ref.ID
		properties = append(properties, &property)
	}

	return properties, nil
}
