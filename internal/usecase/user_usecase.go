package usecase

import (
	"context"

	"casaok/internal/domain/entity"
	"casaok/internal/domain/repository"
	apperrors "casaok/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

func (uc *UserUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, uid)
}

// ListPartnerClients returns the client profiles referred by the partner,
// matched on the partner's own referral code.
func (uc *UserUseCase) ListPartnerClients(ctx context.Context, partnerUID string, limit, offset int) ([]*entity.User, int64, error) {
	partner, err := uc.userRepo.GetByID(ctx, partnerUID)
	if err != nil {
		return nil, 0, err
	}
	if partner.PartnerCode == "" {
		return nil, 0, apperrors.BadRequest("Partner profile has no referral code", nil)
	}

	return uc.userRepo.FindByPartnerCode(ctx, partner.PartnerCode, limit, offset)
}
