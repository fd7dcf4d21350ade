package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"pizzeria/internal/model"
)

// PostgresStore keeps the collection as a JSONB document in the
// order_collections table, one row per collection name.
type PostgresStore struct {
	db   *sql.DB
	name string
}

func NewPostgresStore(db *sql.DB, name string) *PostgresStore {
	return &PostgresStore{db: db, name: name}
}

func (s *PostgresStore) LoadAll(ctx context.Context) ([]model.Order, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM order_collections WHERE name = $1`, s.name).Scan(&doc)
	if err != nil {
		return nil, &Error{Op: "read", Path: s.name, Err: err}
	}
	return s.decode(doc)
}

func (s *PostgresStore) SaveAll(ctx context.Context, orders []model.Order) error {
	doc, err := s.encode(orders)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO order_collections (name, doc, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()
	`, s.name, doc)
	if err != nil {
		return &Error{Op: "write", Path: s.name, Err: err}
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, fn MutateFunc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &Error{Op: "begin", Path: s.name, Err: err}
	}
	defer tx.Rollback()

	var doc []byte
	err = tx.QueryRowContext(ctx, `SELECT doc FROM order_collections WHERE name = $1 FOR UPDATE`, s.name).Scan(&doc)
	if err != nil {
		return &Error{Op: "read", Path: s.name, Err: err}
	}

	orders, err := s.decode(doc)
	if err != nil {
		return err
	}

	orders, err = fn(orders)
	if err != nil {
		return err
	}

	next, err := s.encode(orders)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE order_collections SET doc = $2, updated_at = NOW() WHERE name = $1`,
		s.name, next,
	); err != nil {
		return &Error{Op: "write", Path: s.name, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &Error{Op: "commit", Path: s.name, Err: err}
	}
	return nil
}

func (s *PostgresStore) decode(doc []byte) ([]model.Order, error) {
	var orders []model.Order
	if err := json.Unmarshal(doc, &orders); err != nil {
		return nil, &Error{Op: "decode", Path: s.name, Err: err}
	}
	return orders, nil
}

func (s *PostgresStore) encode(orders []model.Order) (string, error) {
	if orders == nil {
		orders = []model.Order{}
	}
	data, err := json.Marshal(orders)
	if err != nil {
		return "", &Error{Op: "encode", Path: s.name, Err: fmt.Errorf("marshal orders: %w", err)}
	}
	return string(data), nil
}
