package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-control/backend/internal/domain/entity"
)

// TransactionModel holds the columns shared by the transaction_income,
// transaction_expense and transaction_benefit tables. Queries select the
// table explicitly; the per-kind types below only exist for migrations.
type TransactionModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(50);not null"`
	Description string     `gorm:"type:varchar(255)"`
	Amount      Amount     `gorm:"not null"`
	Date        time.Time  `gorm:"type:date;not null;index"`
	Recurrent   *bool
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

// TransactionIncomeModel represents the transaction_income table.
type TransactionIncomeModel struct {
	TransactionModel
}

// TableName returns the table name for the TransactionIncomeModel.
func (TransactionIncomeModel) TableName() string {
	return TransactionTable(entity.TransactionKindIncome)
}

// TransactionExpenseModel represents the transaction_expense table.
type TransactionExpenseModel struct {
	TransactionModel
}

// TableName returns the table name for the TransactionExpenseModel.
func (TransactionExpenseModel) TableName() string {
	return TransactionTable(entity.TransactionKindExpense)
}

// TransactionBenefitModel represents the transaction_benefit table.
type TransactionBenefitModel struct {
	TransactionModel
}

// TableName returns the table name for the TransactionBenefitModel.
func (TransactionBenefitModel) TableName() string {
	return TransactionTable(entity.TransactionKindBenefit)
}

// TransactionTable returns the table storing transactions of the given kind.
func TransactionTable(kind entity.TransactionKind) string {
	return "transaction_" + string(kind)
}

// BeforeCreate assigns the primary key of a new transaction.
func (m *TransactionModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// ToEntity converts a TransactionModel to a domain Transaction entity of the given kind.
func (m *TransactionModel) ToEntity(kind entity.TransactionKind) *entity.Transaction {
	amount := m.Amount.Decimal
	date := m.Date

	return &entity.Transaction{
		ID:          m.ID,
		Kind:        kind,
		Name:        entity.TransactionCategory(m.Name),
		Description: m.Description,
		Amount:      &amount,
		Date:        &date,
		Recurrent:   m.Recurrent,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
// Recurrent is only stored for kinds that carry it.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	m := &TransactionModel{
		ID:          transaction.ID,
		Name:        string(transaction.Name),
		Description: transaction.Description,
		UserID:      transaction.UserID,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
	if transaction.Amount != nil {
		m.Amount = Amount{Decimal: *transaction.Amount}
	}
	if transaction.Date != nil {
		m.Date = *transaction.Date
	}
	if transaction.Kind.RequiresRecurrence() {
		m.Recurrent = transaction.Recurrent
	}
	return m
}
