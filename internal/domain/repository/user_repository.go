package repository

import (
	"context"

	"casaok/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Upsert merges the given fields into users/{id}, creating the
	// document when it does not exist.
	Upsert(ctx context.Context, user *entity.User) error
	FindByPartnerCode(ctx context.Context, partnerCode string, limit, offset int) ([]*entity.User, int64, error)
}
