package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Name        entity.TransactionCategory
	Description string
	Amount      *decimal.Decimal
	Date        *time.Time
	Recurrent   *bool
	UserID      *uuid.UUID
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	validator       *Validator
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository, validator *Validator) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		validator:       validator,
	}
}

// Execute validates and persists a new transaction.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	kind := uc.transactionRepo.Kind()

	transaction := entity.NewTransaction(kind, input.Name, input.Description, input.Amount, input.Date)
	transaction.UserID = input.UserID
	if kind.RequiresRecurrence() {
		transaction.Recurrent = input.Recurrent
	}

	if err := uc.validator.Validate(ctx, transaction); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: transaction}, nil
}
