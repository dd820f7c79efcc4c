package db

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// TableSnapshot holds one table's contents while it is being exported. It is
// never persisted; the textual dump is the durable form.
type TableSnapshot struct {
	Name    string
	Columns []string
	Rows    [][]interface{}

	// per column, whether values render as bare literals
	numeric []bool
}

// ExportDump serializes the schema and data of a database into a SQL dump
// file. Tables are written in enumeration order: DROP TABLE IF EXISTS, the
// engine-reported create statement, then one multi-row INSERT (none for an
// empty table). Any engine error aborts the export; a partially written file
// is left for the caller to deal with.
func (m *Manager) ExportDump(outputPath, dbName string) Result {
	if dbName != "" {
		if err := m.exec(fmt.Sprintf("USE `%s`", dbName)); err != nil {
			return fail("switching to database %s: %v", dbName, err)
		}
	}

	tables, err := m.listTables()
	if err != nil {
		return fail("listing tables: %v", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fail("creating dump file: %v", err)
	}
	defer f.Close()

	name := dbName
	if name == "" {
		name = m.cfg.Database
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "-- Database dump generated on %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "-- Database: %s\n", name)

	for _, table := range tables {
		createSQL, err := m.showCreateTable(table)
		if err != nil {
			return fail("reading definition of table %s: %v", table, err)
		}
		snap, err := m.snapshot(table)
		if err != nil {
			return fail("reading data of table %s: %v", table, err)
		}
		writeTable(w, snap, createSQL)
	}

	if err := w.Flush(); err != nil {
		return fail("writing dump file: %v", err)
	}
	return succeed("dump exported to %s", outputPath)
}

func (m *Manager) listTables() ([]string, error) {
	_, rows, err := m.queryRows("SHOW TABLES")
	if err != nil {
		return nil, err
	}
	tables := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) > 0 {
			tables = append(tables, row[0])
		}
	}
	return tables, nil
}

func (m *Manager) showCreateTable(table string) (string, error) {
	_, rows, err := m.queryRows(fmt.Sprintf("SHOW CREATE TABLE `%s`", table))
	if err != nil {
		return "", err
	}
	if len(rows) == 0 || len(rows[0]) < 2 {
		return "", fmt.Errorf("no definition returned for table %s", table)
	}
	return rows[0][1], nil
}

func (m *Manager) fetchSnapshot(table string) (*TableSnapshot, error) {
	rows, err := m.DB.Query(fmt.Sprintf("SELECT * FROM `%s`", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	snap := &TableSnapshot{Name: table, Columns: cols, numeric: make([]bool, len(cols))}
	for i, ct := range colTypes {
		snap.numeric[i] = numericType(ct.DatabaseTypeName())
	}

	for rows.Next() {
		values := make([]interface{}, len(cols))
		valuePtrs := make([]interface{}, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}
		snap.Rows = append(snap.Rows, values)
	}
	return snap, rows.Err()
}

// writeTable emits the dump section for one table: structure first, then a
// single multi-row insert if the table has any rows.
func writeTable(w io.Writer, snap *TableSnapshot, createSQL string) {
	fmt.Fprintf(w, "\n-- Table structure for table `%s`\n", snap.Name)
	fmt.Fprintf(w, "DROP TABLE IF EXISTS `%s`;\n", snap.Name)
	fmt.Fprintf(w, "%s;\n\n", createSQL)

	fmt.Fprintf(w, "-- Dumping data for table `%s`\n", snap.Name)
	if len(snap.Rows) == 0 {
		return
	}

	fmt.Fprintf(w, "INSERT INTO `%s` (`%s`) VALUES\n", snap.Name, strings.Join(snap.Columns, "`,`"))
	for i, row := range snap.Rows {
		vals := make([]string, len(row))
		for j, v := range row {
			numeric := j < len(snap.numeric) && snap.numeric[j]
			vals[j] = renderValue(v, numeric)
		}
		terminator := ",\n"
		if i == len(snap.Rows)-1 {
			terminator = ";\n"
		}
		fmt.Fprintf(w, "(%s)%s", strings.Join(vals, ","), terminator)
	}
}

// renderValue serializes one column value: NULL for absent values, a bare
// literal for numeric columns, otherwise a single-quoted string with embedded
// quotes doubled. Binary and temporal values go through their textual form.
func renderValue(v interface{}, numeric bool) string {
	if v == nil {
		return "NULL"
	}
	switch val := v.(type) {
	case []byte:
		if numeric {
			return string(val)
		}
		return quoteString(string(val))
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case time.Time:
		return quoteString(val.Format("2006-01-02 15:04:05"))
	case string:
		if numeric {
			return val
		}
		return quoteString(val)
	default:
		return quoteString(fmt.Sprintf("%v", val))
	}
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// numericType reports whether a driver-reported column type renders without
// quotes in a dump.
func numericType(dbType string) bool {
	switch strings.TrimPrefix(strings.ToUpper(dbType), "UNSIGNED ") {
	case "TINYINT", "SMALLINT", "MEDIUMINT", "INT", "BIGINT",
		"DECIMAL", "FLOAT", "DOUBLE", "YEAR", "BIT":
		return true
	}
	return false
}
