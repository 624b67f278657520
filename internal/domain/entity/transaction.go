package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes the three flavors of money movement.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
	TransactionKindBenefit TransactionKind = "benefit"
)

// TransactionKinds lists every supported kind.
var TransactionKinds = []TransactionKind{
	TransactionKindIncome,
	TransactionKindExpense,
	TransactionKindBenefit,
}

// TransactionCategory is the typed name of a transaction.
type TransactionCategory string

// Income categories.
const (
	IncomeCategoryBonus      TransactionCategory = "BONUS"
	IncomeCategoryFreelance  TransactionCategory = "FREELANCE"
	IncomeCategorySalary     TransactionCategory = "SALARY"
	IncomeCategorySale       TransactionCategory = "SALE"
	IncomeCategoryRealEstate TransactionCategory = "REAL_STATE"
)

// Expense categories.
const (
	ExpenseCategoryEducation      TransactionCategory = "EDUCATION"
	ExpenseCategoryEntertainment  TransactionCategory = "ENTERTAINMENT"
	ExpenseCategoryFood           TransactionCategory = "FOOD"
	ExpenseCategoryHealth         TransactionCategory = "HEALTH"
	ExpenseCategoryHousing        TransactionCategory = "HOUSING"
	ExpenseCategoryInsurance      TransactionCategory = "INSURANCE"
	ExpenseCategorySubscription   TransactionCategory = "SUBSCRIPTION"
	ExpenseCategoryTaxes          TransactionCategory = "TAXES"
	ExpenseCategoryTransportation TransactionCategory = "TRANSPORTATION"
	ExpenseCategoryUtilities      TransactionCategory = "UTILITIES"
	ExpenseCategoryOther          TransactionCategory = "OTHER"
)

// Benefit categories.
const (
	BenefitCategoryDentalInsurance TransactionCategory = "DENTAL_INSURANCE"
	BenefitCategoryGas             TransactionCategory = "GAS"
	BenefitCategoryGrocery         TransactionCategory = "GROCERY"
	BenefitCategoryGymMembership   TransactionCategory = "GYM_MEMBERSHIP"
	BenefitCategoryHealthInsurance TransactionCategory = "HEALTH_INSURANCE"
	BenefitCategoryPetInsurance    TransactionCategory = "PET_INSURANCE"
)

var incomeCategories = []TransactionCategory{
	IncomeCategoryBonus,
	IncomeCategoryFreelance,
	IncomeCategorySalary,
	IncomeCategorySale,
	IncomeCategoryRealEstate,
}

var expenseCategories = []TransactionCategory{
	ExpenseCategoryEducation,
	ExpenseCategoryEntertainment,
	ExpenseCategoryFood,
	ExpenseCategoryHealth,
	ExpenseCategoryHousing,
	ExpenseCategoryInsurance,
	ExpenseCategorySubscription,
	ExpenseCategoryTaxes,
	ExpenseCategoryTransportation,
	ExpenseCategoryUtilities,
	ExpenseCategoryOther,
}

var benefitCategories = []TransactionCategory{
	BenefitCategoryDentalInsurance,
	BenefitCategoryGas,
	BenefitCategoryGrocery,
	BenefitCategoryGymMembership,
	BenefitCategoryHealthInsurance,
	BenefitCategoryPetInsurance,
}

// ParseIncomeCategory resolves a free-text income name.
func ParseIncomeCategory(raw string) (TransactionCategory, error) {
	return parseEnum(raw, incomeCategories, "name", "TransactionIncomeType")
}

// ParseExpenseCategory resolves a free-text expense name.
func ParseExpenseCategory(raw string) (TransactionCategory, error) {
	return parseEnum(raw, expenseCategories, "name", "TransactionExpenseType")
}

// ParseBenefitCategory resolves a free-text benefit name.
func ParseBenefitCategory(raw string) (TransactionCategory, error) {
	return parseEnum(raw, benefitCategories, "name", "TransactionBenefitType")
}

// ParseCategory resolves raw against the categories of kind k.
func (k TransactionKind) ParseCategory(raw string) (TransactionCategory, error) {
	switch k {
	case TransactionKindExpense:
		return ParseExpenseCategory(raw)
	case TransactionKindBenefit:
		return ParseBenefitCategory(raw)
	default:
		return ParseIncomeCategory(raw)
	}
}

// Label is the human readable prefix used in messages, e.g. "Transaction income".
func (k TransactionKind) Label() string {
	return "Transaction " + string(k)
}

// Resource is the HTTP resource name for the kind, e.g. "transaction-income".
func (k TransactionKind) Resource() string {
	return "transaction-" + string(k)
}

// RequiresRecurrence reports whether transactions of this kind carry a mandatory recurrence flag.
func (k TransactionKind) RequiresRecurrence() bool {
	return k == TransactionKindExpense
}

// Transaction represents an income, expense or benefit entry.
// Amount, Date and Recurrent are nil when not supplied; a zero ID means not yet persisted.
type Transaction struct {
	ID          uuid.UUID
	Kind        TransactionKind
	Name        TransactionCategory
	Description string
	Amount      *decimal.Decimal
	Date        *time.Time
	Recurrent   *bool
	UserID      *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new, not yet persisted Transaction of the given kind.
func NewTransaction(kind TransactionKind, name TransactionCategory, description string, amount *decimal.Decimal, date *time.Time) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		Kind:        kind,
		Name:        name,
		Description: description,
		Amount:      amount,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
