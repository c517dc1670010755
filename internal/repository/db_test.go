package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xrate/internal/config"
)

func TestNewPostgresDB_MalformedDSN(t *testing.T) {
	db, err := NewPostgresDB(&config.DatabaseConfig{DSN: "postgres://%zz"})
	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "open database")
}
