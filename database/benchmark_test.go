package db

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchmarkRecordsConnectionFailures(t *testing.T) {
	stubDial(t, func(cfg Config) (*sql.DB, error) {
		return nil, errors.New("engine offline")
	})

	cfg := testConfig()
	cfg.MaxRetries = 1

	records := Benchmark(cfg, "dump.sql", 3)
	require.Len(t, records, 3)
	for i, record := range records {
		assert.Equal(t, i+1, record.Iteration)
		assert.False(t, record.Success)
		assert.Contains(t, record.Err, "engine offline")
		assert.Zero(t, record.ImportTime)
		assert.Zero(t, record.ExportTime)
	}
}
