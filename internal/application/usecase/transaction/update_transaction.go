package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
	domainerror "github.com/budget-control/backend/internal/domain/error"
)

// TransactionPatch carries the fields of a partial update.
// Nil fields are left untouched.
type TransactionPatch struct {
	Name        *entity.TransactionCategory
	Description *string
	Amount      *decimal.Decimal
	Date        *time.Time
	Recurrent   *bool
	UserID      *uuid.UUID
}

// ApplyTo copies every supplied field onto transaction.
func (p TransactionPatch) ApplyTo(transaction *entity.Transaction) {
	if p.Name != nil {
		transaction.Name = *p.Name
	}
	if p.Description != nil {
		transaction.Description = *p.Description
	}
	if p.Amount != nil {
		amount := *p.Amount
		transaction.Amount = &amount
	}
	if p.Date != nil {
		date := *p.Date
		transaction.Date = &date
	}
	if p.Recurrent != nil && transaction.Kind.RequiresRecurrence() {
		recurrent := *p.Recurrent
		transaction.Recurrent = &recurrent
	}
	if p.UserID != nil {
		userID := *p.UserID
		transaction.UserID = &userID
	}
}

// UpdateTransactionInput represents the input for transaction update.
type UpdateTransactionInput struct {
	ID    uuid.UUID
	Patch TransactionPatch
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles partial transaction updates.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	validator       *Validator
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository, validator *Validator) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		validator:       validator,
	}
}

// Execute merges the patch onto the stored transaction, revalidates and saves it.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	label := uc.transactionRepo.Kind().Label()

	if input.ID == uuid.Nil {
		return nil, domainerror.NewInvalidOperationError(label + " ID cannot be null")
	}

	transaction, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordNotFoundError(label + " not found")
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	input.Patch.ApplyTo(transaction)
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.validator.Validate(ctx, transaction); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: transaction}, nil
}
