package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS order_collections")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_collections")).
		WithArgs("orders").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, InitSchema(context.Background(), db, "orders"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitSchema_Failure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS order_collections")).
		WillReturnError(errors.New("permission denied"))

	err = InitSchema(context.Background(), db, "orders")
	assert.ErrorContains(t, err, "failed to init schema")
	assert.NoError(t, mock.ExpectationsWereMet())
}
