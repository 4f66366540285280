package model

import (
	"time"
)

// Payment represents the database model for payments
type Payment struct {
	TransactionID     string    `gorm:"primaryKey;size:64"`
	DebtorAccountID   string    `gorm:"not null;size:64;index"`
	CreditorAccountID string    `gorm:"not null;size:64;index"`
	Amount            string    `gorm:"not null;size:50"`
	AmountInCents     int64     `gorm:"not null"`
	Currency          string    `gorm:"not null;size:3"`
	TransactionStatus string    `gorm:"not null;size:20;index"`
	Description       string    `gorm:"type:text"`
	ErrorMessage      string    `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"not null;index"`
	UpdatedAt         time.Time `gorm:"not null"`
	CompletedAt       *time.Time

	// Define relationships
	DebtorAccount   Account `gorm:"foreignKey:DebtorAccountID;references:AccountID"`
	CreditorAccount Account `gorm:"foreignKey:CreditorAccountID;references:AccountID"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
