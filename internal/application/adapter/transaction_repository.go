// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-control/backend/internal/domain/entity"
)

// TransactionFilter defines the optional criteria for listing transactions.
// Every non-nil field contributes one predicate and predicates are AND-ed.
type TransactionFilter struct {
	Name        *entity.TransactionCategory
	Description *string // Case-insensitive substring match
	Amount      *decimal.Decimal
	Date        *time.Time // Ignored when StartDate or EndDate is set
	StartDate   *time.Time // Inclusive
	EndDate     *time.Time // Inclusive
	Recurrent   *bool
}

// TransactionRepository defines the interface for transaction persistence operations.
// An implementation is bound to a single transaction kind.
type TransactionRepository interface {
	// Kind returns the transaction kind served by this repository.
	Kind() entity.TransactionKind

	// Create persists a new transaction and assigns its ID.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	// Returns domainerror.ErrRecordNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIdentity retrieves every transaction whose identity tuple
	// (name, description, amount, date and, for expenses, recurrent) equals the candidate's.
	FindByIdentity(ctx context.Context, candidate *entity.Transaction) ([]*entity.Transaction, error)

	// FindByFilter retrieves transactions matching all supplied filter criteria.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Update saves every field of an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
