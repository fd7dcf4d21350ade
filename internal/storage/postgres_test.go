package storage

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/model"
)

const (
	selectDoc          = `SELECT doc FROM order_collections WHERE name = $1`
	selectDocForUpdate = `SELECT doc FROM order_collections WHERE name = $1 FOR UPDATE`
	updateDoc          = `UPDATE order_collections SET doc = $2, updated_at = NOW() WHERE name = $1`
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db, "orders"), mock
}

func TestPostgresStore_LoadAll(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectDoc)).
		WithArgs("orders").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).
			AddRow([]byte(`[{"id":1,"type":"veggie","crust":"thin","size":"small","quantity":2,"pricePer":9,"orderDate":"2024/03/05"}]`)))

	got, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Order{
		{ID: 1, Type: "veggie", Crust: "thin", Size: "small", Quantity: 2, PricePer: 9, OrderDate: "2024/03/05"},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadAllMissingCollection(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectDoc)).
		WithArgs("orders").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))

	_, err := s.LoadAll(context.Background())

	var serr *Error
	require.True(t, errors.As(err, &serr))
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveAll(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO order_collections`)).
		WithArgs("orders", `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.SaveAll(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Update(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectDocForUpdate)).
		WithArgs("orders").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(`[]`)))
	mock.ExpectExec(regexp.QuoteMeta(updateDoc)).
		WithArgs("orders", `[{"id":0,"type":"cheese","crust":"","size":"","quantity":1,"pricePer":7.5,"orderDate":"2024/03/05"}]`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Update(context.Background(), func(orders []model.Order) ([]model.Order, error) {
		return append(orders, model.Order{ID: NextID(orders), Type: "cheese", Quantity: 1, PricePer: 7.5, OrderDate: "2024/03/05"}), nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdateAbortRollsBack(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectDocForUpdate)).
		WithArgs("orders").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(`[]`)))
	mock.ExpectRollback()

	err := s.Update(context.Background(), func(orders []model.Order) ([]model.Order, error) {
		return RemoveByID(orders, 3)
	})
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
