package model

import (
	"time"
)

// PaymentLog represents the database model for the append-only payment
// audit log. Rows are inserted only, never updated or deleted.
type PaymentLog struct {
	LogID         uint64    `gorm:"primaryKey;autoIncrement"`
	TransactionID string    `gorm:"not null;size:64;index"`
	OldStatus     *string   `gorm:"size:20"` // NULL only for the creation entry
	NewStatus     string    `gorm:"not null;size:20"`
	ErrorMessage  string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`

	// Define relationships
	Payment Payment `gorm:"foreignKey:TransactionID;references:TransactionID"`
}

// TableName specifies the table name for PaymentLog
func (PaymentLog) TableName() string {
	return "payment_logs"
}
