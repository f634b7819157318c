package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Waer1/complex-product-CRUD/internal/apierror"

	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// notFound converts gorm.ErrRecordNotFound into a domain NotFound error.
// Any other error is returned unchanged.
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound(fmt.Sprintf(format, args...))
	}
	return err
}
