package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ChunkOutcome is one worker's import result.
type ChunkOutcome struct {
	Database string
	Success  bool
	Message  string
	Elapsed  time.Duration
}

type chunkJob struct {
	path     string
	database string
}

// ImportParallel partitions a dump into contiguous statement chunks and
// imports each one concurrently into its own database, named
// <prefix>_thread_<i>. Every worker opens its own connection; no two workers
// share a target. Outcomes come back in completion order, one per chunk.
// Chunk files are removed on a best-effort basis afterwards.
func ImportParallel(cfg Config, dumpPath, prefix string, workers int) ([]ChunkOutcome, error) {
	if workers < 1 {
		workers = 1
	}

	data, err := os.ReadFile(dumpPath)
	if err != nil {
		return nil, fmt.Errorf("reading dump file: %v", err)
	}
	chunks := partitionStatements(SplitStatements(string(data)), workers)

	tmpDir, err := os.MkdirTemp("", "flightdump-chunks-*")
	if err != nil {
		return nil, fmt.Errorf("creating chunk directory: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	jobs := make([]chunkJob, 0, len(chunks))
	for i, chunk := range chunks {
		path := filepath.Join(tmpDir, fmt.Sprintf("chunk_%d.sql", i))
		if err := os.WriteFile(path, []byte(strings.Join(chunk, ";\n")+";\n"), 0644); err != nil {
			return nil, fmt.Errorf("writing chunk file: %v", err)
		}
		jobs = append(jobs, chunkJob{
			path:     path,
			database: fmt.Sprintf("%s_thread_%d", prefix, i),
		})
	}

	return runChunks(jobs, func(job chunkJob) ChunkOutcome {
		start := time.Now()
		m, err := Connect(cfg)
		if err != nil {
			logrus.WithField("database", job.database).Warnf("chunk import failed: %v", err)
			return ChunkOutcome{Database: job.database, Message: err.Error(), Elapsed: time.Since(start)}
		}
		defer m.Close()

		res := m.ImportDump(job.path, job.database)
		return ChunkOutcome{
			Database: job.database,
			Success:  res.Success,
			Message:  res.Message,
			Elapsed:  time.Since(start),
		}
	}), nil
}

// partitionStatements splits statements into at most n contiguous runs: a
// disjoint, order-preserving cover where no statement is split, duplicated
// or dropped.
func partitionStatements(statements []string, n int) [][]string {
	if len(statements) == 0 || n < 1 {
		return nil
	}
	if n > len(statements) {
		n = len(statements)
	}
	size := (len(statements) + n - 1) / n

	var chunks [][]string
	for start := 0; start < len(statements); start += size {
		end := start + size
		if end > len(statements) {
			end = len(statements)
		}
		chunks = append(chunks, statements[start:end])
	}
	return chunks
}

// runChunks starts one worker per job and blocks until all have finished.
// Workers emit their outcome on a channel drained after the join, so no
// record is ever lost to a concurrent append.
func runChunks(jobs []chunkJob, importChunk func(chunkJob) ChunkOutcome) []ChunkOutcome {
	outcomes := make(chan ChunkOutcome, len(jobs))

	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func(job chunkJob) {
			defer wg.Done()
			outcomes <- importChunk(job)
		}(job)
	}
	wg.Wait()
	close(outcomes)

	results := make([]ChunkOutcome, 0, len(jobs))
	for outcome := range outcomes {
		results = append(results, outcome)
	}
	return results
}
