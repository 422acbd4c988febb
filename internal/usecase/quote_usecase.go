package usecase

import (
	"context"

	"casaok/internal/domain/entity"
	"casaok/internal/domain/repository"
	apperrors "casaok/pkg/errors"
)

type QuoteUseCase struct {
	quoteRepo repository.QuoteRepository
}

func NewQuoteUseCase(quoteRepo repository.QuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{
		quoteRepo: quoteRepo,
	}
}

func (uc *QuoteUseCase) GetQuote(ctx context.Context, id string) (*entity.Quote, error) {
	return uc.quoteRepo.GetByID(ctx, id)
}

func (uc *QuoteUseCase) ListUserQuotes(ctx context.Context, ownerUID string) ([]*entity.Quote, error) {
	return uc.quoteRepo.ListByOwner(ctx, ownerUID)
}

func (uc *QuoteUseCase) ListQuotes(ctx context.Context, status string, limit, offset int) ([]*entity.Quote, int64, error) {
	return uc.quoteRepo.List(ctx, status, limit, offset)
}

// SendQuote attaches the estimated value and moves the quote from
// aguardando to enviado.
func (uc *QuoteUseCase) SendQuote(ctx context.Context, id string, estimatedValue float64) (*entity.Quote, error) {
	if estimatedValue <= 0 {
		return nil, apperrors.BadRequest("Estimated value must be positive", nil)
	}

	quote, err := uc.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote.Status != entity.QuoteStatusAguardando {
		return nil, apperrors.Conflict("Quote was already sent", nil)
	}

	if err := uc.quoteRepo.UpdateStatus(ctx, id, entity.QuoteStatusEnviado, &estimatedValue); err != nil {
		return nil, err
	}

	quote.Status = entity.QuoteStatusEnviado
	quote.EstimatedValue = &estimatedValue
	return quote, nil
}

// ApproveQuote and RejectQuote are client decisions on a sent quote; both
// require the quote to be in enviado and to belong to the caller.
func (uc *QuoteUseCase) ApproveQuote(ctx context.Context, id, ownerUID string) (*entity.Quote, error) {
	return uc.decide(ctx, id, ownerUID, entity.QuoteStatusAprovado)
}

func (uc *QuoteUseCase) RejectQuote(ctx context.Context, id, ownerUID string) (*entity.Quote, error) {
	return uc.decide(ctx, id, ownerUID, entity.QuoteStatusRecusado)
}

func (uc *QuoteUseCase) decide(ctx context.Context, id, ownerUID, decision string) (*entity.Quote, error) {
	quote, err := uc.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote.OwnerUID != ownerUID {
		return nil, apperrors.Forbidden("Quote belongs to another user", nil)
	}
	if quote.Status != entity.QuoteStatusEnviado {
		return nil, apperrors.Conflict("Quote is not awaiting a decision", nil)
	}

	if err := uc.quoteRepo.UpdateStatus(ctx, id, decision, nil); err != nil {
		return nil, err
	}

	quote.Status = decision
	return quote, nil
}
