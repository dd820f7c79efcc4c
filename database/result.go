package db

import "fmt"

// Result is the uniform outcome of every mutating operation. Callers must
// inspect it before relying on side effects; Success does not imply zero
// skipped statements during an import (see ImportDump).
type Result struct {
	Success bool
	Message string
}

func succeed(format string, args ...interface{}) Result {
	return Result{Success: true, Message: fmt.Sprintf(format, args...)}
}

func fail(format string, args ...interface{}) Result {
	return Result{Success: false, Message: fmt.Sprintf(format, args...)}
}
