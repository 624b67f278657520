// Package transaction contains the income, expense and benefit use cases.
// Every use case is bound to one transaction kind through its repository.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/application/validator"
	"github.com/budget-control/backend/internal/domain/entity"
	domainerror "github.com/budget-control/backend/internal/domain/error"
	"github.com/budget-control/backend/internal/domain/valueobject"
)

// Validator enforces, in order, required fields, uniqueness of the identity
// tuple and amount bounds. The first violation is returned.
type Validator struct {
	transactionRepo adapter.TransactionRepository
}

// NewValidator creates a new Validator instance.
func NewValidator(transactionRepo adapter.TransactionRepository) *Validator {
	return &Validator{
		transactionRepo: transactionRepo,
	}
}

// Validate runs every check against a candidate transaction.
func (v *Validator) Validate(ctx context.Context, transaction *entity.Transaction) error {
	if err := v.checkRequired(transaction); err != nil {
		return err
	}

	if err := v.checkDuplicate(ctx, transaction); err != nil {
		return err
	}

	return valueobject.ValidateAmount(*transaction.Amount)
}

func (v *Validator) checkRequired(transaction *entity.Transaction) error {
	switch {
	case transaction.Name == "":
		return domainerror.NewMissingRequiredFieldError("name", transaction.Kind.Label()+" name cannot be null")
	case transaction.Amount == nil:
		return domainerror.NewMissingRequiredFieldError("amount", "Transaction amount cannot be null")
	case transaction.Date == nil:
		return domainerror.NewMissingRequiredFieldError("date", "Transaction date cannot be null")
	case transaction.Kind.RequiresRecurrence() && transaction.Recurrent == nil:
		return domainerror.NewMissingRequiredFieldError("recurrent", "Transaction recurrent cannot be null")
	}
	return nil
}

func (v *Validator) checkDuplicate(ctx context.Context, transaction *entity.Transaction) error {
	matches, err := v.transactionRepo.FindByIdentity(ctx, transaction)
	if err != nil {
		return fmt.Errorf("failed to look up duplicate transactions: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(matches))
	for _, match := range matches {
		ids = append(ids, match.ID)
	}

	if validator.HasConflict(transaction.ID, ids...) {
		return domainerror.NewDuplicateRegistrationError(transaction.Kind.Label() + " already exists")
	}
	return nil
}
