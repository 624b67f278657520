package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
	domainerror "github.com/budget-control/backend/internal/domain/error"
)

func amountOf(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func dateOf(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}

func boolOf(b bool) *bool { return &b }

func strOf(s string) *string { return &s }

func salaryInput() CreateTransactionInput {
	return CreateTransactionInput{
		Name:   entity.IncomeCategorySalary,
		Amount: amountOf("1000.00"),
		Date:   dateOf("2024-01-01"),
	}
}

func TestCreateTransaction_Success(t *testing.T) {
	repo := newFakeRepository(entity.TransactionKindIncome)
	uc := NewCreateTransactionUseCase(repo, NewValidator(repo))

	output, err := uc.Execute(context.Background(), salaryInput())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, output.Transaction.ID)
	assert.Equal(t, entity.TransactionKindIncome, output.Transaction.Kind)
	assert.Nil(t, output.Transaction.Recurrent)
	assert.Equal(t, 1, repo.creates)
}

func TestCreateTransaction_DuplicateIsRejected(t *testing.T) {
	repo := newFakeRepository(entity.TransactionKindIncome)
	uc := NewCreateTransactionUseCase(repo, NewValidator(repo))

	_, err := uc.Execute(context.Background(), salaryInput())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), salaryInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerror.ErrDuplicateRegistration))
	assert.Equal(t, "Transaction income already exists", err.Error())
	assert.Equal(t, 1, repo.creates)
}

func TestCreateTransaction_EquivalentAmountIsDuplicate(t *testing.T) {
	repo := newFakeRepository(entity.TransactionKindIncome)
	uc := NewCreateTransactionUseCase(repo, NewValidator(repo))

	_, err := uc.Execute(context.Background(), salaryInput())
	require.NoError(t, err)

	input := salaryInput()
	input.Amount = amountOf("1000")
	_, err = uc.Execute(context.Background(), input)

	assert.ErrorIs(t, err, domainerror.ErrDuplicateRegistration)
}

func TestCreateTransaction_RequiredFieldsInOrder(t *testing.T) {
	tests := []struct {
		name      string
		kind      entity.TransactionKind
		input     CreateTransactionInput
		wantField string
		wantMsg   string
	}{
		{
			name:      "everything missing reports name first",
			kind:      entity.TransactionKindExpense,
			input:     CreateTransactionInput{},
			wantField: "name",
			wantMsg:   "Transaction expense name cannot be null",
		},
		{
			name:      "amount before date",
			kind:      entity.TransactionKindBenefit,
			input:     CreateTransactionInput{Name: entity.BenefitCategoryGas},
			wantField: "amount",
			wantMsg:   "Transaction amount cannot be null",
		},
		{
			name:      "date",
			kind:      entity.TransactionKindIncome,
			input:     CreateTransactionInput{Name: entity.IncomeCategoryBonus, Amount: amountOf("10")},
			wantField: "date",
			wantMsg:   "Transaction date cannot be null",
		},
		{
			name:      "recurrent for expenses",
			kind:      entity.TransactionKindExpense,
			input:     CreateTransactionInput{Name: entity.ExpenseCategoryFood, Amount: amountOf("10"), Date: dateOf("2024-01-01")},
			wantField: "recurrent",
			wantMsg:   "Transaction recurrent cannot be null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository(tt.kind)
			uc := NewCreateTransactionUseCase(repo, NewValidator(repo))

			_, err := uc.Execute(context.Background(), tt.input)

			var resErr *domainerror.ResourceError
			require.True(t, errors.As(err, &resErr))
			assert.Equal(t, domainerror.ErrCodeMissingRequiredField, resErr.Code)
			assert.Equal(t, tt.wantField, resErr.Field)
			assert.Equal(t, tt.wantMsg, resErr.Message)
			assert.Zero(t, repo.creates)
		})
	}
}

func TestCreateTransaction_AmountBounds(t *testing.T) {
	tests := []struct {
		amount  string
		wantErr bool
	}{
		{"0", true},
		{"-1", true},
		{"9999999999999999.99", false},
		{"10000000000000000.00", true},
		{"1.005", true},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			repo := newFakeRepository(entity.TransactionKindIncome)
			uc := NewCreateTransactionUseCase(repo, NewValidator(repo))

			input := salaryInput()
			input.Amount = amountOf(tt.amount)
			_, err := uc.Execute(context.Background(), input)

			if tt.wantErr {
				assert.ErrorIs(t, err, domainerror.ErrInvalidField)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCreateTransaction_ExpenseKeepsRecurrence(t *testing.T) {
	repo := newFakeRepository(entity.TransactionKindExpense)
	uc := NewCreateTransactionUseCase(repo, NewValidator(repo))

	input := CreateTransactionInput{Name: entity.ExpenseCategoryHousing, Amount: amountOf("1500"), Date: dateOf("2024-01-05"), Recurrent: boolOf(true)}
	_, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)

	input.Recurrent = boolOf(false)
	output, err := uc.Execute(context.Background(), input)

	require.NoError(t, err, "a different recurrence flag is a different identity tuple")
	assert.False(t, *output.Transaction.Recurrent)
}

func TestGetTransaction(t *testing.T) {
	repo := newFakeRepository(entity.TransactionKindIncome)
	created, err := NewCreateTransactionUseCase(repo, NewValidator(repo)).Execute(context.Background(), salaryInput())
	require.NoError(t, err)

	uc := NewGetTransactionUseCase(repo)

	found, err := uc.Execute(context.Background(), created.Transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Transaction.ID, found.ID)

	missing, err := uc.Execute(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	repo.findErr = errStoreDown
	_, err = uc.Execute(context.Background(), created.Transaction.ID)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestListTransactions_RejectsInvertedRange(t *testing.T) {
	repo := newFakeRepository(entity.TransactionKindExpense)
	uc := NewListTransactionsUseCase(repo)

	_, err := uc.Execute(context.Background(), ListTransactionsInput{Filter: adapter.TransactionFilter{
		StartDate: dateOf("2024-02-01"),
		EndDate:   dateOf("2024-01-01"),
	}})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerror.ErrInvalidField)
	assert.Equal(t, "Start date cannot be after end date", err.Error())
	assert.Nil(t, repo.lastFilter)
}

func TestListTransactions_DropsRecurrenceForOtherKinds(t *testing.T) {
	repo := newFakeRepository(entity.TransactionKindIncome)
	uc := NewListTransactionsUseCase(repo)

	_, err := uc.Execute(context.Background(), ListTransactionsInput{Filter: adapter.TransactionFilter{
		Recurrent: boolOf(true),
		StartDate: dateOf("2024-01-01"),
		EndDate:   dateOf("2024-01-01"),
	}})

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter)
	assert.Nil(t, repo.lastFilter.Recurrent)
	assert.NotNil(t, repo.lastFilter.StartDate)
}

func TestUpdateTransaction_OnlySuppliedFieldsChange(t *testing.T) {
	repo := newFakeRepository(entity.TransactionKindExpense)
	validator := NewValidator(repo)
	created, err := NewCreateTransactionUseCase(repo, validator).Execute(context.Background(), CreateTransactionInput{
		Name:        entity.ExpenseCategoryFood,
		Description: "old desc",
		Amount:      amountOf("42.50"),
		Date:        dateOf("2024-03-10"),
		Recurrent:   boolOf(true),
	})
	require.NoError(t, err)

	uc := NewUpdateTransactionUseCase(repo, validator)
	_, err = uc.Execute(context.Background(), UpdateTransactionInput{
		ID:    created.Transaction.ID,
		Patch: TransactionPatch{Description: strOf("new desc")},
	})
	require.NoError(t, err)

	stored := repo.records[created.Transaction.ID]
	assert.Equal(t, "new desc", stored.Description)
	assert.Equal(t, entity.ExpenseCategoryFood, stored.Name)
	assert.True(t, stored.Amount.Equal(decimal.RequireFromString("42.5")))
	assert.True(t, stored.Date.Equal(*dateOf("2024-03-10")))
	assert.True(t, *stored.Recurrent)
}

func TestUpdateTransaction_SelfMatchIsAllowed(t *testing.T) {
	repo := newFakeRepository(entity.TransactionKindIncome)
	validator := NewValidator(repo)
	created, err := NewCreateTransactionUseCase(repo, validator).Execute(context.Background(), salaryInput())
	require.NoError(t, err)

	_, err = NewUpdateTransactionUseCase(repo, validator).Execute(context.Background(), UpdateTransactionInput{
		ID:    created.Transaction.ID,
		Patch: TransactionPatch{Amount: amountOf("1000.00")},
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, repo.updates)
}

func TestUpdateTransaction_ConflictWithAnotherRecord(t *testing.T) {
	repo := newFakeRepository(entity.TransactionKindIncome)
	validator := NewValidator(repo)
	create := NewCreateTransactionUseCase(repo, validator)

	_, err := create.Execute(context.Background(), salaryInput())
	require.NoError(t, err)
	other := salaryInput()
	other.Amount = amountOf("2000")
	second, err := create.Execute(context.Background(), other)
	require.NoError(t, err)

	_, err = NewUpdateTransactionUseCase(repo, validator).Execute(context.Background(), UpdateTransactionInput{
		ID:    second.Transaction.ID,
		Patch: TransactionPatch{Amount: amountOf("1000")},
	})

	assert.ErrorIs(t, err, domainerror.ErrDuplicateRegistration)
	assert.Zero(t, repo.updates)
}

func TestUpdateTransaction_Errors(t *testing.T) {
	repo := newFakeRepository(entity.TransactionKindBenefit)
	uc := NewUpdateTransactionUseCase(repo, NewValidator(repo))

	_, err := uc.Execute(context.Background(), UpdateTransactionInput{ID: uuid.Nil})
	assert.ErrorIs(t, err, domainerror.ErrInvalidOperation)
	assert.EqualError(t, err, "Transaction benefit ID cannot be null")

	_, err = uc.Execute(context.Background(), UpdateTransactionInput{ID: uuid.New()})
	assert.ErrorIs(t, err, domainerror.ErrRecordNotFound)
}

func TestUpdateTransaction_InvalidAmountIsRejected(t *testing.T) {
	repo := newFakeRepository(entity.TransactionKindIncome)
	validator := NewValidator(repo)
	created, err := NewCreateTransactionUseCase(repo, validator).Execute(context.Background(), salaryInput())
	require.NoError(t, err)

	_, err = NewUpdateTransactionUseCase(repo, validator).Execute(context.Background(), UpdateTransactionInput{
		ID:    created.Transaction.ID,
		Patch: TransactionPatch{Amount: amountOf("-5")},
	})

	assert.ErrorIs(t, err, domainerror.ErrInvalidField)
	assert.True(t, repo.records[created.Transaction.ID].Amount.Equal(decimal.NewFromInt(1000)))
}

func TestDeleteTransaction(t *testing.T) {
	repo := newFakeRepository(entity.TransactionKindIncome)
	created, err := NewCreateTransactionUseCase(repo, NewValidator(repo)).Execute(context.Background(), salaryInput())
	require.NoError(t, err)

	uc := NewDeleteTransactionUseCase(repo)

	require.NoError(t, uc.Execute(context.Background(), created.Transaction.ID))
	assert.Empty(t, repo.records)

	err = uc.Execute(context.Background(), created.Transaction.ID)
	assert.ErrorIs(t, err, domainerror.ErrRecordNotFound)
	assert.Equal(t, 1, repo.deletes)
}
