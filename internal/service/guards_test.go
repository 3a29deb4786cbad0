package service

import (
	"errors"
	"testing"

	apperrors "test-manager-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type named struct {
	id   int64
	name string
}

func namedKey(n named) (int64, string) {
	return n.id, n.name
}

func TestEnsureExists(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		row, err := ensureExists(func(id int64) (*named, error) {
			return &named{id: id, name: "a"}, nil
		}, 3, apperrors.ErrProjectNotFound, "get")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), row.id)
	})

	t.Run("record not found", func(t *testing.T) {
		_, err := ensureExists(func(int64) (*named, error) {
			return nil, gorm.ErrRecordNotFound
		}, 3, apperrors.ErrProjectNotFound, "get")
		assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
	})

	t.Run("wrapped record not found", func(t *testing.T) {
		_, err := ensureExists(func(int64) (*named, error) {
			return nil, errors.Join(errors.New("lookup"), gorm.ErrRecordNotFound)
		}, 3, apperrors.ErrUserNotFound, "get")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("nil row", func(t *testing.T) {
		_, err := ensureExists(func(int64) (*named, error) {
			return nil, nil
		}, 3, apperrors.ErrComponentNotFound, "get")
		assert.ErrorIs(t, err, apperrors.ErrComponentNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		cause := errors.New("connection refused")
		_, err := ensureExists(func(int64) (*named, error) {
			return nil, cause
		}, 3, apperrors.ErrComponentNotFound, "failed to get component")
		assert.True(t, apperrors.IsStore(err))
		assert.ErrorIs(t, err, cause)
	})
}

func TestEnsureNoDependents(t *testing.T) {
	count := func(n int64, err error) func(int64) (int64, error) {
		return func(int64) (int64, error) { return n, err }
	}

	assert.NoError(t, ensureNoDependents(count(0, nil), 1, apperrors.ErrUserHasTestCases, "count"))
	assert.ErrorIs(t, ensureNoDependents(count(2, nil), 1, apperrors.ErrUserHasTestCases, "count"), apperrors.ErrUserHasTestCases)
	assert.True(t, apperrors.IsStore(ensureNoDependents(count(0, errors.New("boom")), 1, apperrors.ErrUserHasTestCases, "count")))
}

func TestEnsureNameUnique(t *testing.T) {
	rows := []named{{1, "Alpha"}, {2, "Beta"}, {3, ""}}

	testCases := []struct {
		name      string
		candidate string
		excludeID int64
		conflict  bool
	}{
		{"new name", "Gamma", 0, false},
		{"same case", "Alpha", 0, true},
		{"different case", "aLPHA", 0, true},
		{"own row excluded", "alpha", 1, false},
		{"other row still checked", "beta", 1, true},
		{"blank candidate", "", 0, false},
		{"whitespace candidate", "   ", 0, false},
		{"greek capital alpha is a different letter", "ΑLPHA", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ensureNameUnique(tc.candidate, rows, tc.excludeID, namedKey, apperrors.ErrProjectExists)
			if tc.conflict {
				assert.ErrorIs(t, err, apperrors.ErrProjectExists)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
