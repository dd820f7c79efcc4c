package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 2 * time.Second
)

// Config holds the connection settings, loaded once at process start.
type Config struct {
	Host       string
	Port       int
	User       string
	Password   string
	Database   string
	MaxRetries int
	RetryDelay time.Duration
}

func (c Config) dsn() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", c.User, c.Password, c.Host, c.Port, c.Database)
}

// Manager handles all operations against one database session.
type Manager struct {
	DB *sql.DB

	cfg Config

	// seams for tests; Connect wires the real implementations
	exec      func(stmt string) error
	queryRows func(query string) ([]string, [][]string, error)
	snapshot  func(table string) (*TableSnapshot, error)
}

// dialDB opens and validates a single connection attempt. Swapped out in tests.
var dialDB = func(cfg Config) (*sql.DB, error) {
	conn, err := sql.Open("mysql", cfg.dsn())
	if err != nil {
		return nil, err
	}
	// USE and other session state must stick to one underlying connection,
	// so the pool is capped at a single conn.
	conn.SetMaxOpenConns(1)
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// Connect establishes a database session, retrying up to MaxRetries times
// with a fixed delay between attempts. Failed handles are discarded; the
// terminal error carries the last underlying cause.
func Connect(cfg Config) (*Manager, error) {
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = DefaultMaxRetries
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = DefaultRetryDelay
	}

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		conn, err := dialDB(cfg)
		if err == nil {
			m := &Manager{DB: conn, cfg: cfg}
			m.exec = m.execStatement
			m.queryRows = m.fetchRows
			m.snapshot = m.fetchSnapshot
			return m, nil
		}
		lastErr = err
		logrus.WithFields(logrus.Fields{
			"attempt": attempt,
			"host":    cfg.Host,
			"port":    cfg.Port,
		}).Warnf("connection attempt failed: %v", err)
		if attempt < retries {
			time.Sleep(delay)
		}
	}
	return nil, fmt.Errorf("connecting to database after %d attempts: %v", retries, lastErr)
}

func (m *Manager) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

func (m *Manager) execStatement(stmt string) error {
	_, err := m.DB.Exec(stmt)
	return err
}

// fetchRows runs a query and returns the column names plus every row with
// all values stringified.
func (m *Manager) fetchRows(query string) ([]string, [][]string, error) {
	rows, err := m.DB.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		values := make([]interface{}, len(cols))
		valuePtrs := make([]interface{}, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, nil, err
		}

		row := make([]string, len(cols))
		for i, val := range values {
			switch v := val.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(v)
			case time.Time:
				row[i] = v.Format("2006-01-02 15:04:05")
			default:
				row[i] = fmt.Sprintf("%v", v)
			}
		}
		out = append(out, row)
	}

	return cols, out, rows.Err()
}
