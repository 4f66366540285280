package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	mockcore "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/mocks/port/core"
)

func TestNewPaymentLog(t *testing.T) {
	fixedTime := time.Date(2025, 1, 18, 14, 30, 0, 0, time.UTC)
	tp := new(mockcore.MockTimeProvider)
	tp.On("Now").Return(fixedTime)

	t.Run("creation entry has no old status", func(t *testing.T) {
		log := NewPaymentLog("TXN_20250118_A3F9K2", nil, StatusPending, "", tp)

		assert.True(t, log.IsInitial())
		assert.Nil(t, log.OldStatus)
		assert.Equal(t, StatusPending, log.NewStatus)
		assert.Empty(t, log.ErrorMessage)
		assert.Equal(t, fixedTime, log.CreatedAt)
	})

	t.Run("transition entry carries both statuses", func(t *testing.T) {
		old := StatusPending
		log := NewPaymentLog("TXN_20250118_A3F9K2", &old, StatusProcessing, "", tp)

		assert.False(t, log.IsInitial())
		assert.Equal(t, StatusPending, *log.OldStatus)
		assert.Equal(t, StatusProcessing, log.NewStatus)
	})

	t.Run("failure entry records the reason", func(t *testing.T) {
		old := StatusProcessing
		log := NewPaymentLog("TXN_20250118_A3F9K2", &old, StatusFailed, "Network error during processing", tp)

		assert.Equal(t, StatusFailed, log.NewStatus)
		assert.Equal(t, "Network error during processing", log.ErrorMessage)
	})
}
