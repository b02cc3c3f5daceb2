package dao

import (
	"context"

	"gorm.io/gorm"
)

// WithTx runs fn inside one transaction: committed when fn returns nil,
// rolled back on error or panic. fn must only use tx.
func WithTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}
