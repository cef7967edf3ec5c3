package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/huangsam/typomatch/internal/contract"
	"github.com/huangsam/typomatch/schema"
	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// documentsTable holds one row per document.
const documentsTable = "typology_documents"

// SQLStore keeps documents in a single table of a SQL database.
type SQLStore struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	connStr string
}

var _ contract.DocumentStore = &SQLStore{} // Compile-time check

// driverName maps a backend to its database/sql driver.
func driverName(backend schema.DatabaseBackend) (string, error) {
	switch backend {
	case schema.SQLiteBackend:
		return "sqlite", nil
	case schema.MySQLBackend:
		return "mysql", nil
	case schema.PostgreSQLBackend:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported SQL backend: %s. Must be sqlite, mysql, or postgresql", backend)
	}
}

// openDB opens and pings the database behind a backend.
func openDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, error) {
	driver, err := driverName(backend)
	if err != nil {
		return nil, err
	}
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = DefaultSQLitePath()
	}
	db, err := sql.Open(driver, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", backend, err)
	}
	if backend == schema.SQLiteBackend {
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}
	return db, nil
}

// NewSQLStore opens the database and makes sure the documents table exists.
//
// Connection strings:
//   - sqlite: a file path, empty for the default location
//   - mysql: user:password@tcp(host:port)/dbname
//   - postgresql: host=localhost port=5432 user=postgres password=secret dbname=postgres
func NewSQLStore(backend schema.DatabaseBackend, connStr string) (*SQLStore, error) {
	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createTableQuery(backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", documentsTable, err)
	}
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = DefaultSQLitePath()
	}
	return &SQLStore{db: db, backend: backend, connStr: connStr}, nil
}

// createTableQuery returns the CREATE TABLE query for the given backend.
func createTableQuery(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return `CREATE TABLE IF NOT EXISTS typology_documents (
				doc_name VARCHAR(255) PRIMARY KEY,
				doc_body LONGTEXT NOT NULL,
				updated_at BIGINT NOT NULL
			)`
	case schema.PostgreSQLBackend:
		return `CREATE TABLE IF NOT EXISTS typology_documents (
				doc_name TEXT PRIMARY KEY,
				doc_body TEXT NOT NULL,
				updated_at BIGINT NOT NULL
			)`
	default: // SQLite
		return `CREATE TABLE IF NOT EXISTS typology_documents (
				doc_name TEXT PRIMARY KEY,
				doc_body TEXT NOT NULL,
				updated_at INTEGER NOT NULL
			)`
	}
}

// placeholder returns the n-th parameter placeholder for the backend.
func (s *SQLStore) placeholder(n int) string {
	if s.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// upsertQuery returns the UPSERT query for the backend.
func (s *SQLStore) upsertQuery() string {
	switch s.backend {
	case schema.MySQLBackend:
		return `INSERT INTO typology_documents (doc_name, doc_body, updated_at) VALUES (?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE doc_body = new.doc_body, updated_at = new.updated_at`
	case schema.PostgreSQLBackend:
		return `INSERT INTO typology_documents (doc_name, doc_body, updated_at) VALUES ($1, $2, $3)
			ON CONFLICT (doc_name) DO UPDATE SET doc_body = EXCLUDED.doc_body, updated_at = EXCLUDED.updated_at`
	default: // SQLite
		return `INSERT OR REPLACE INTO typology_documents (doc_name, doc_body, updated_at) VALUES (?, ?, ?)`
	}
}

// Read returns the document body.
func (s *SQLStore) Read(name string) ([]byte, error) {
	query := fmt.Sprintf(`SELECT doc_body FROM %s WHERE doc_name = %s`, documentsTable, s.placeholder(1))
	var body string
	err := s.db.QueryRow(query, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s in %s: %w", name, s.backend, schema.ErrDocumentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return []byte(body), nil
}

// Write upserts the document inside a transaction.
func (s *SQLStore) Write(name string, data []byte) error {
	if err := validateDocumentName(name); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if _, err := tx.Exec(s.upsertQuery(), name, string(data), time.Now().Unix()); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", name, err)
	}
	return nil
}

// Exists reports whether a row for the document is present.
func (s *SQLStore) Exists(name string) (bool, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE doc_name = %s`, documentsTable, s.placeholder(1))
	var count int
	if err := s.db.QueryRow(query, name).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check %s: %w", name, err)
	}
	return count > 0, nil
}

// List returns the stored document names in sorted order.
func (s *SQLStore) List() ([]string, error) {
	rows, err := s.db.Query(fmt.Sprintf(`SELECT doc_name FROM %s ORDER BY doc_name`, documentsTable))
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes the row of the document.
func (s *SQLStore) Delete(name string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE doc_name = %s`, documentsTable, s.placeholder(1))
	if _, err := s.db.Exec(query, name); err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	return nil
}

// GetStatus returns status information about the documents table.
func (s *SQLStore) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(s.backend),
		Location:  s.location(),
		Connected: s.db != nil,
	}
	names, err := s.List()
	if err != nil {
		return status, err
	}
	status.Documents = names
	status.TotalDocuments = len(names)
	if status.TotalDocuments == 0 {
		return status, nil
	}

	var lastTs, size int64
	query := fmt.Sprintf("SELECT MAX(updated_at), SUM(LENGTH(doc_body)) FROM %s", documentsTable)
	if err := s.db.QueryRow(query).Scan(&lastTs, &size); err != nil {
		return status, fmt.Errorf("failed to get document statistics: %w", err)
	}
	status.LastUpdateTime = time.Unix(lastTs, 0)
	status.SizeBytes = size
	return status, nil
}

// location describes where the data lives without leaking credentials.
func (s *SQLStore) location() string {
	switch s.backend {
	case schema.MySQLBackend:
		cfg, err := mysql.ParseDSN(s.connStr)
		if err != nil {
			return "mysql"
		}
		return fmt.Sprintf("%s/%s", cfg.Addr, cfg.DBName)
	case schema.PostgreSQLBackend:
		cfg, err := pgx.ParseConfig(s.connStr)
		if err != nil {
			return "postgresql"
		}
		return fmt.Sprintf("%s:%d/%s", cfg.Host, cfg.Port, cfg.Database)
	default:
		return s.connStr
	}
}

// Close closes the underlying DB connection.
func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
