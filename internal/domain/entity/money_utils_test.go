package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/error"
)

func TestValidateAndConvertAmount(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		expected    int64
		expectError bool
		errorType   error
	}{
		{"whole number", "100", 10000, false, nil},
		{"one decimal place", "100.5", 10050, false, nil},
		{"two decimal places", "1500.50", 150050, false, nil},
		{"trailing point", "10.", 1000, false, nil},
		{"zero", "0", 0, false, nil},
		{"with whitespace", "  42.00  ", 4200, false, nil},
		{"empty string", "", 0, true, errs.ErrInvalidAmount},
		{"negative", "-10.00", 0, true, errs.ErrNegativeAmount},
		{"three decimal places", "10.001", 0, true, errs.ErrInvalidAmount},
		{"multiple points", "10.0.0", 0, true, errs.ErrInvalidAmount},
		{"not a number", "abc", 0, true, errs.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateAndConvertAmount(tt.amount)

			if tt.expectError {
				assert.Error(t, err)
				if tt.errorType != nil {
					assert.ErrorIs(t, err, tt.errorType)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestValidatePaymentAmount(t *testing.T) {
	t.Run("accepts a normal amount", func(t *testing.T) {
		cents, err := ValidatePaymentAmount("1500.50")
		assert.NoError(t, err)
		assert.Equal(t, int64(150050), cents)
	})

	t.Run("rejects zero", func(t *testing.T) {
		_, err := ValidatePaymentAmount("0.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("accepts the maximum", func(t *testing.T) {
		cents, err := ValidatePaymentAmount("1000000.00")
		assert.NoError(t, err)
		assert.Equal(t, MaxAmountInCents, cents)
	})

	t.Run("rejects above the maximum", func(t *testing.T) {
		_, err := ValidatePaymentAmount("1000000.01")
		assert.ErrorIs(t, err, errs.ErrAmountTooLarge)
	})
}

func TestCentsToString(t *testing.T) {
	tests := []struct {
		name     string
		cents    int64
		expected string
	}{
		{"typical amount", 1015, "10.15"},
		{"whole amount", 1000, "10.00"},
		{"zero", 0, "0.00"},
		{"sub-unit amount", 5, "0.05"},
		{"large amount", 10000000, "100000.00"},
		{"negative amount", -1050, "-10.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CentsToString(tt.cents))
		})
	}
}

func TestCentsToFloat(t *testing.T) {
	assert.Equal(t, 1500.5, CentsToFloat(150050))
	assert.Equal(t, 0.0, CentsToFloat(0))
}

func TestFloatToAmountString(t *testing.T) {
	assert.Equal(t, "1500.50", FloatToAmountString(1500.50))
	assert.Equal(t, "10.00", FloatToAmountString(10))
	assert.Equal(t, "0.05", FloatToAmountString(0.05))
}

func TestAmountRoundTrips(t *testing.T) {
	for _, amount := range []string{"0.01", "1.00", "99.99", "1500.50", "1000000.00"} {
		cents, err := ValidateAndConvertAmount(amount)
		assert.NoError(t, err)
		assert.Equal(t, amount, CentsToString(cents))
	}
}
