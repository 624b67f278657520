package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
	domainerror "github.com/budget-control/backend/internal/domain/error"
)

// GetTransactionUseCase handles lookup of a single transaction.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns the transaction with the given ID, or nil when it does not exist.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return transaction, nil
}
