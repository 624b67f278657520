package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-control/backend/internal/application/adapter"
	domainerror "github.com/budget-control/backend/internal/domain/error"
)

// DeleteTransactionUseCase handles transaction deletion.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute removes the transaction with the given ID.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	label := uc.transactionRepo.Kind().Label()

	if _, err := uc.transactionRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return domainerror.NewRecordNotFoundError(label + " not found")
		}
		return fmt.Errorf("failed to find transaction: %w", err)
	}

	if err := uc.transactionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
