package transaction

import (
	"context"
	"fmt"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
	domainerror "github.com/budget-control/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Filter adapter.TransactionFilter
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles filtered transaction listing.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns every transaction matching all supplied criteria.
// An empty filter returns every transaction of the kind.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	filter := input.Filter

	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return nil, domainerror.NewInvalidFieldError("startDate", "Start date cannot be after end date")
	}

	if !uc.transactionRepo.Kind().RequiresRecurrence() {
		filter.Recurrent = nil
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
