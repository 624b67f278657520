package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/budget-control/backend/internal/domain/error"
)

func TestTransactionKind_ParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		kind    TransactionKind
		raw     string
		want    TransactionCategory
		wantErr string
	}{
		{"income exact", TransactionKindIncome, "SALARY", IncomeCategorySalary, ""},
		{"income lower with spaces", TransactionKindIncome, "  salary ", IncomeCategorySalary, ""},
		{"income real estate", TransactionKindIncome, "real_state", IncomeCategoryRealEstate, ""},
		{"benefit mixed case", TransactionKindBenefit, "Gym_Membership", BenefitCategoryGymMembership, ""},
		{"expense", TransactionKindExpense, "food", ExpenseCategoryFood, ""},
		{"income rejects benefit value", TransactionKindIncome, "GAS", "", "Invalid value provided for TransactionIncomeType: GAS"},
		{"expense keeps raw value in message", TransactionKindExpense, " pizza ", "", "Invalid value provided for TransactionExpenseType:  pizza "},
		{"benefit unknown", TransactionKindBenefit, "CAR", "", "Invalid value provided for TransactionBenefitType: CAR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.kind.ParseCategory(tt.raw)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerror.ErrInvalidField))
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUserRole(t *testing.T) {
	role, err := ParseUserRole(" admin")
	require.NoError(t, err)
	assert.Equal(t, UserRoleAdmin, role)

	_, err = ParseUserRole("owner")
	var resErr *domainerror.ResourceError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, "role", resErr.Field)
	assert.Equal(t, "Invalid value provided for UserRoleType: owner", resErr.Message)
}

func TestTransactionKind_Descriptors(t *testing.T) {
	assert.Equal(t, "Transaction expense", TransactionKindExpense.Label())
	assert.Equal(t, "transaction-benefit", TransactionKindBenefit.Resource())
	assert.True(t, TransactionKindExpense.RequiresRecurrence())
	assert.False(t, TransactionKindIncome.RequiresRecurrence())
	assert.False(t, TransactionKindBenefit.RequiresRecurrence())
}
