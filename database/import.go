package db

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// ImportDump replays a SQL dump file against the current session. When
// newDBName is set, the database is created idempotently and made active
// before the replay. Statements run best-effort: a failing statement is
// logged and skipped, and never downgrades the overall result. Only a
// failure to create or switch the database, or to read the file, is
// terminal.
func (m *Manager) ImportDump(dumpPath, newDBName string) Result {
	if newDBName != "" {
		if err := m.exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", newDBName)); err != nil {
			return fail("creating database %s: %v", newDBName, err)
		}
		if err := m.exec(fmt.Sprintf("USE `%s`", newDBName)); err != nil {
			return fail("switching to database %s: %v", newDBName, err)
		}
	}

	data, err := os.ReadFile(dumpPath)
	if err != nil {
		return fail("reading dump file: %v", err)
	}

	statements := SplitStatements(string(data))
	skipped := 0
	for i, stmt := range statements {
		if err := m.exec(stmt); err != nil {
			skipped++
			logrus.WithFields(logrus.Fields{
				"statement": i + 1,
				"total":     len(statements),
			}).Warnf("skipping failed statement: %v", err)
		}
	}

	if skipped > 0 {
		return succeed("dump imported, %d of %d statements skipped", skipped, len(statements))
	}
	return succeed("dump imported successfully")
}
