package entity

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mockcore "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/mocks/port/core"
)

var transactionIDPattern = regexp.MustCompile(`^TXN_\d{8}_[A-Z0-9]{6}$`)

func TestGenerateTransactionID(t *testing.T) {
	fixedTime := time.Date(2025, 1, 18, 12, 0, 0, 0, time.UTC)

	t.Run("uses the date stamp and charset suffix", func(t *testing.T) {
		tp := new(mockcore.MockTimeProvider)
		tp.On("Now").Return(fixedTime)

		random := new(mockcore.MockRandomSource)
		// A=0, 3 is at index 29, F=5, 9 is at index 35, K=10, 2 is at index 28
		random.On("IntN", 36).Return(0).Once()
		random.On("IntN", 36).Return(29).Once()
		random.On("IntN", 36).Return(5).Once()
		random.On("IntN", 36).Return(35).Once()
		random.On("IntN", 36).Return(10).Once()
		random.On("IntN", 36).Return(28).Once()

		id := GenerateTransactionID(tp, random)

		assert.Equal(t, "TXN_20250118_A3F9K2", id)
		random.AssertExpectations(t)
	})

	t.Run("matches the documented format", func(t *testing.T) {
		tp := new(mockcore.MockTimeProvider)
		tp.On("Now").Return(fixedTime)

		random := new(mockcore.MockRandomSource)
		random.On("IntN", mock.Anything).Return(17)

		id := GenerateTransactionID(tp, random)
		assert.Regexp(t, transactionIDPattern, id)
	})
}
