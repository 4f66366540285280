package model

import (
	"time"
)

// Account represents the database model for ledger accounts
type Account struct {
	AccountID   string    `gorm:"primaryKey;size:64"`
	AccountName string    `gorm:"not null;size:255"`
	AccountType string    `gorm:"not null;size:20;index"`
	Balance     int64     `gorm:"not null"` // Balance in cents
	Currency    string    `gorm:"not null;size:3;default:USD"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
