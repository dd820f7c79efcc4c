package db

import (
	"fmt"
	"time"
)

// BenchmarkRecord holds the timings of one import/export cycle.
type BenchmarkRecord struct {
	Iteration  int
	Success    bool
	ImportTime time.Duration
	ExportTime time.Duration
	ExportFile string
	Err        string
}

// Benchmark drives sequential import/export cycles, each against a freshly
// named database, and times both phases. An iteration whose import fails
// records the error and skips the export. Iterations run one after another;
// ImportParallel is the concurrent path.
func Benchmark(cfg Config, dumpPath string, iterations int) []BenchmarkRecord {
	records := make([]BenchmarkRecord, 0, iterations)

	for i := 1; i <= iterations; i++ {
		record := BenchmarkRecord{Iteration: i}

		m, err := Connect(cfg)
		if err != nil {
			record.Err = err.Error()
			records = append(records, record)
			continue
		}

		dbName := fmt.Sprintf("benchmark_db_%d", i)
		start := time.Now()
		res := m.ImportDump(dumpPath, dbName)
		record.ImportTime = time.Since(start)

		if !res.Success {
			record.Err = res.Message
			records = append(records, record)
			m.Close()
			continue
		}

		exportFile := fmt.Sprintf("benchmark_export_%d.sql", i)
		start = time.Now()
		res = m.ExportDump(exportFile, dbName)
		record.ExportTime = time.Since(start)

		record.Success = res.Success
		if res.Success {
			record.ExportFile = exportFile
		} else {
			record.Err = res.Message
		}
		records = append(records, record)
		m.Close()
	}

	return records
}
