package service

import (
	"errors"
	"strings"

	apperrors "test-manager-backend/internal/errors"

	"gorm.io/gorm"
)

// ensureExists resolves a row through lookup. A missing row yields notFound;
// any other lookup failure is reported as a store error.
func ensureExists[T any](lookup func(int64) (*T, error), id int64, notFound error, op string) (*T, error) {
	row, err := lookup(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, apperrors.NewStoreError(op, err)
	}
	if row == nil {
		return nil, notFound
	}
	return row, nil
}

// ensureNoDependents fails with conflict when count reports any row still
// referencing id.
func ensureNoDependents(count func(int64) (int64, error), id int64, conflict error, op string) error {
	n, err := count(id)
	if err != nil {
		return apperrors.NewStoreError(op, err)
	}
	if n > 0 {
		return conflict
	}
	return nil
}

// ensureNameUnique compares candidate case-insensitively against the names in
// rows, skipping the row whose id is excludeID (0 on create). Blank names
// never conflict with each other.
func ensureNameUnique[T any](candidate string, rows []T, excludeID int64, key func(T) (int64, string), conflict error) error {
	if strings.TrimSpace(candidate) == "" {
		return nil
	}
	for _, row := range rows {
		id, name := key(row)
		if excludeID != 0 && id == excludeID {
			continue
		}
		if name == "" {
			continue
		}
		if strings.EqualFold(name, candidate) {
			return conflict
		}
	}
	return nil
}
