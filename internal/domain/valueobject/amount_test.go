package valueobject

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	domainerror "github.com/budget-control/backend/internal/domain/error"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr string
	}{
		{"one cent", "0.01", ""},
		{"whole number", "1000", ""},
		{"two decimals", "1000.00", ""},
		{"trailing zeros beyond scale", "1.500", ""},
		{"upper bound", "9999999999999999.99", ""},
		{"zero", "0", "Transaction amount must be greater than zero."},
		{"negative", "-10.50", "Transaction amount must be greater than zero."},
		{"over upper bound", "10000000000000000.00", "Transaction amount exceed the allowed limit of 9999999999999999.99."},
		{"rounds over upper bound", "9999999999999999.995", "Transaction amount exceed the allowed limit of 9999999999999999.99."},
		{"three decimals", "1.005", "Transaction amount must have at most two decimal places."},
		{"many decimals", "12.3456", "Transaction amount must have at most two decimal places."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(decimal.RequireFromString(tt.amount))

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Equal(t, tt.wantErr, err.Error())
				assert.True(t, errors.Is(err, domainerror.ErrInvalidField))
			}
		})
	}
}

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		cpf  string
		want bool
	}{
		{"529.982.247-25", true},
		{"52998224725", true},
		{"111.444.777-35", true},
		{"390.533.447-05", true},
		{"529.982.247-26", false},
		{"111.111.111-11", false},
		{"1234567890", false},
		{"abc.def.ghi-jk", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.cpf, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCPF(tt.cpf))
		})
	}
}
