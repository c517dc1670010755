//go:build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"
)

var testDB *sql.DB

// resetTestData truncates the lookup history table.
func resetTestData(t *testing.T) {
	t.Helper()

	_, err := testDB.ExecContext(context.Background(), "TRUNCATE TABLE rate_lookups")
	if err != nil {
		t.Fatalf("failed to truncate rate_lookups table: %v", err)
	}
}

// testContext returns a context with a 30-second deadline tied to the test's cleanup.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}
