package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-control/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Recurrent is only read for expenses.
type CreateTransactionRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description" binding:"max=255"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Recurrent   *bool            `json:"recurrent"`
	UserID      *string          `json:"userId"`
}

// UpdateTransactionRequest represents the request body for a partial transaction update.
// Absent fields keep their stored value.
type UpdateTransactionRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description" binding:"omitempty,max=255"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Recurrent   *bool            `json:"recurrent"`
	UserID      *string          `json:"userId"`
}

// ParsedDate returns the request date, or nil when absent.
func (r CreateTransactionRequest) ParsedDate() *time.Time {
	return parseDate(r.Date)
}

// ParsedDate returns the request date, or nil when absent.
func (r UpdateTransactionRequest) ParsedDate() *time.Time {
	return parseDate(r.Date)
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Date        *string   `json:"date"`
	Recurrent   *bool     `json:"recurrent,omitempty"`
	UserID      *string   `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          transaction.ID.String(),
		Name:        string(transaction.Name),
		Description: transaction.Description,
		Date:        formatDate(transaction.Date),
		UserID:      formatOptionalID(transaction.UserID),
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
	if transaction.Amount != nil {
		response.Amount = transaction.Amount.StringFixed(2)
	}
	if transaction.Kind.RequiresRecurrence() {
		response.Recurrent = transaction.Recurrent
	}
	return response
}

// ToTransactionResponses converts a list of domain transactions.
func ToTransactionResponses(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		responses[i] = ToTransactionResponse(transaction)
	}
	return responses
}

func formatOptionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	formatted := id.String()
	return &formatted
}
