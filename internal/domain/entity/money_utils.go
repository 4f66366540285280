package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/error"
)

// MoneyUtils contains utility functions for handling monetary values.
// Amounts are carried as int64 cents inside the domain to avoid floating
// point precision issues, and as 2-decimal strings at the edges.

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// MaxAmountInCents is the per-payment upper bound (1,000,000.00)
const MaxAmountInCents int64 = 100_000_000

// ValidateAndConvertAmount validates a string amount and converts it to cents.
// Uses a string-based approach to handle decimal places:
// - If no decimal point: appends "00"
// - If one digit after decimal: appends a "0"
// - If two digits after decimal: just removes the point
// Returns the amount as int64 cents and an error if validation fails.
func ValidateAndConvertAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string

	if len(parts) == 1 {
		// No decimal point
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			// Like "10."
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// ValidatePaymentAmount validates an amount for use as a payment amount:
// parseable, strictly positive and within the per-payment limit.
func ValidatePaymentAmount(amount string) (int64, error) {
	cents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents == 0 {
		return 0, errs.ErrNegativeAmount
	}
	if cents > MaxAmountInCents {
		return 0, fmt.Errorf("%w: maximum is %s", errs.ErrAmountTooLarge, CentsToString(MaxAmountInCents))
	}
	return cents, nil
}

// CentsToString converts an integer cents amount to a decimal string.
// For example:
// - 1015 becomes "10.15"
// - 1000 becomes "10.00"
func CentsToString(amountInCents int64) string {
	isNegative := amountInCents < 0
	if isNegative {
		amountInCents = -amountInCents
	}

	amountStr := strconv.FormatInt(amountInCents, 10)

	// Ensure minimum length for the split below
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}

// CentsToFloat converts an integer cents amount to a float64 for API
// serialization. Only used at the response boundary; all arithmetic
// stays in cents.
func CentsToFloat(amountInCents int64) float64 {
	return float64(amountInCents) / 100
}

// FloatToAmountString converts a float amount from a JSON payload into a
// 2-decimal string suitable for ValidateAndConvertAmount.
func FloatToAmountString(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
