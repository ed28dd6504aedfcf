package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type amountHolder struct {
	Amount decimal.Decimal `validate:"required,gt=0"`
}

func TestRegister_DecimalTags(t *testing.T) {
	v := validator.New()
	Register(v)

	tests := []struct {
		amount string
		valid  bool
	}{
		{"0.01", true},
		{"1500.50", true},
		{"0", false},
		{"-3", false},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := v.Struct(amountHolder{Amount: decimal.RequireFromString(tt.amount)})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRegisterGinValidators(t *testing.T) {
	require.NoError(t, RegisterGinValidators())
}
