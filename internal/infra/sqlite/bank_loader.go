// Package sqlite serves question banks from an embedded SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"flashlight-portfolio/internal/domain"
	_ "modernc.org/sqlite" // driver: sqlite
)

const schema = `
CREATE TABLE IF NOT EXISTS question_banks (
  id TEXT PRIMARY KEY,
  data TEXT NOT NULL
);
`

// Open opens the database and ensures the bank table exists.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = "file:flashlight.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single connection keeps :memory: databases shared across calls
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return db, nil
}

// BankLoader reads banks stored as JSON text rows.
type BankLoader struct {
	db *sql.DB
}

func NewBankLoader(db *sql.DB) *BankLoader {
	return &BankLoader{db: db}
}

func (l *BankLoader) LoadBank(ctx context.Context, bankID string) (domain.QuestionBank, error) {
	var raw string
	err := l.db.QueryRowContext(ctx, `SELECT data FROM question_banks WHERE id = ?`, bankID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.QuestionBank{}, domain.ErrBankNotFound
	}
	if err != nil {
		return domain.QuestionBank{}, fmt.Errorf("load bank: %w", err)
	}
	var questions []domain.Question
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return domain.QuestionBank{}, fmt.Errorf("unmarshal bank: %w", err)
	}
	return domain.QuestionBank{ID: bankID, Questions: questions}, nil
}

// Seed inserts the bank unless a row with the same id exists.
func (l *BankLoader) Seed(ctx context.Context, bank domain.QuestionBank) error {
	data, err := json.Marshal(bank.Questions)
	if err != nil {
		return fmt.Errorf("marshal bank: %w", err)
	}
	_, err = l.db.ExecContext(ctx,
		`INSERT INTO question_banks (id, data) VALUES (?, ?) ON CONFLICT(id) DO NOTHING`,
		bank.ID, string(data))
	if err != nil {
		return fmt.Errorf("seed bank: %w", err)
	}
	return nil
}
