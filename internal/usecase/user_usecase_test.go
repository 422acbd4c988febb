package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casaok/internal/domain/entity"
	apperrors "casaok/pkg/errors"
)

func TestListPartnerClients(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewUserUseCase(userRepo)
	ctx := context.Background()

	userRepo.Create(ctx, &entity.User{ID: "uid-imob", Role: entity.RoleImobiliaria, PartnerCode: "IMOB10"})
	userRepo.Create(ctx, &entity.User{ID: "uid-c1", Role: entity.RoleCliente, PartnerCode: "IMOB10"})
	userRepo.Create(ctx, &entity.User{ID: "uid-c2", Role: entity.RoleCliente, PartnerCode: "OUTRA"})
	userRepo.Create(ctx, &entity.User{ID: "uid-c3", Role: entity.RoleCliente, PartnerCode: "IMOB10"})

	clients, total, err := uc.ListPartnerClients(ctx, "uid-imob", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total, "the partner's own profile shares the code")
	assert.Len(t, clients, 3)
}

func TestListPartnerClientsWithoutCode(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewUserUseCase(userRepo)
	ctx := context.Background()

	userRepo.Create(ctx, &entity.User{ID: "uid-imob", Role: entity.RoleImobiliaria})

	_, _, err := uc.ListPartnerClients(ctx, "uid-imob", 20, 0)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestGetProfile(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewUserUseCase(userRepo)
	ctx := context.Background()

	userRepo.Create(ctx, &entity.User{ID: "uid-1", FullName: "Maria Silva"})

	user, err := uc.GetProfile(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", user.FullName)

	_, err = uc.GetProfile(ctx, "uid-missing")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}
