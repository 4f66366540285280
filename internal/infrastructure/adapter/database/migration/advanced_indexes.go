package migration

import (
	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	// Composite index for status-filtered payment listings ordered newest first
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_payments_status_created_at
		ON payments (transaction_status, created_at DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create status/created_at composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Partial index for payments still awaiting processing
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_payments_in_flight
		ON payments (created_at)
		WHERE transaction_status IN ('pending', 'processing')
	`).Error; err != nil {
		m.logger.Error("Failed to create in-flight payments partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// BRIN index for created_at (more efficient for temporal data)
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_payments_created_at_brin
		ON payments USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Ordered audit trail reads per transaction
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_payment_logs_transaction_created
		ON payment_logs (transaction_id, created_at)
	`).Error; err != nil {
		m.logger.Error("Failed to create payment_logs composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}
