package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"casaok/internal/domain/entity"
	"casaok/internal/domain/repository"
	"casaok/pkg/errors"
)

type firestoreServiceCatalogRepository struct {
	client *firestore.Client
}

func NewFirestoreServiceCatalogRepository(client *firestore.Client) repository.ServiceCatalogRepository {
	return &firestoreServiceCatalogRepository{
		client: client,
	}
}

func (r *firestoreServiceCatalogRepository) Create(ctx context.Context, entry *entity.ServiceCatalogEntry) error {
	if entry.ID == "" {
		doc := r.client.Collection("services_catalog").NewDoc()
		entry.ID = doc.ID
	}

	_, err := r.client.Collection("services_catalog").Doc(entry.ID).Set(ctx, entry)
	if err != nil {
		return errors.Internal("Failed to create catalog entry", err)
	}
	return nil
}

func (r *firestoreServiceCatalogRepository) GetByName(ctx context.Context, name string) (*entity.ServiceCatalogEntry, error) {
	query := r.client.Collection("services_catalog").Where("name", "==", name).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal("Failed to query service catalog", err)
	}

	var entry entity.ServiceCatalogEntry
	if err := doc.DataTo(&entry); err != nil {
		return nil, errors.Internal("Failed to parse catalog document", err)
	}
	entry.ID = doc.Ref.ID

	return &entry, nil
}

func (r *firestoreServiceCatalogRepository) List(ctx context.Context) ([]*entity.ServiceCatalogEntry, error) {
	iter := r.client.Collection("services_catalog").Documents(ctx)

	var entries []*entity.ServiceCatalogEntry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list service catalog", err)
		}

		var entry entity.ServiceCatalogEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, errors.Internal("Failed to parse catalog document", err)
		}
		entry.ID = doc.Ref.ID
		entries = append(entries, &entry)
	}

	return entries, nil
}
