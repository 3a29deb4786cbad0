//go:build integration
// +build integration

package repository

import (
	"os"
	"testing"

	"test-manager-backend/internal/testutils"
)

// TestMain purges the shared Postgres container once every suite has run
func TestMain(m *testing.M) {
	os.Exit(testutils.RunMain(m))
}
