package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gramcare/caselink/internal/shared"
)

func TestSQLite_GetDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("select value, revision from slots").
		WithArgs(CasesKey).
		WillReturnError(errors.New("disk I/O error"))

	s := NewSQLite(db)
	_, _, err = s.Get(context.Background(), CasesKey)
	assert.ErrorContains(t, err, "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLite_PutRollsBackOnExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("select revision from slots").
		WithArgs(CasesKey).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("insert into slots").
		WillReturnError(errors.New("database or disk is full"))
	mock.ExpectRollback()

	s := NewSQLite(db)
	_, err = s.Put(context.Background(), CasesKey, "[]", 0)
	assert.ErrorContains(t, err, "disk is full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLite_PutStaleRevisionRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("select revision from slots").
		WithArgs(CasesKey).
		WillReturnRows(sqlmock.NewRows([]string{"revision"}).AddRow(7))
	mock.ExpectRollback()

	s := NewSQLite(db)
	_, err = s.Put(context.Background(), CasesKey, "[]", 3)
	assert.ErrorIs(t, err, shared.ErrorStaleRevision)
	assert.NoError(t, mock.ExpectationsWereMet())
}
