package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreWithMock(t *testing.T) (*Store, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return New(db), mock, db
}

const (
	selectQ  = `(?s)^SELECT\s+value\s+FROM\s+kv\s+WHERE\s+key\s*=\s*\$1$`
	advLockQ = `(?s)^SELECT\s+pg_advisory_xact_lock\(hashtext\(\$1\)\)$`
	lockQ    = `(?s)^SELECT\s+value\s+FROM\s+kv\s+WHERE\s+key\s*=\s*\$1\s+FOR\s+UPDATE$`
	upsertQ  = `(?s)^INSERT\s+INTO\s+kv\s*\(key,\s*value\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT\s*\(key\)\s*DO\s+UPDATE\s+SET\s+value\s*=\s*EXCLUDED\.value$`
	deleteQ  = `(?s)^DELETE\s+FROM\s+kv\s+WHERE\s+key\s*=\s*\$1$`
	clearQ   = `(?s)^DELETE\s+FROM\s+kv$`
	listQ    = `(?s)^SELECT\s+key,\s*value\s+FROM\s+kv$`
	errMatch = `db error: .*db down`
)

func TestGet_Found(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQ).WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[]`)))

	v, err := s.Get(context.Background(), "users")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound_ReturnsNilNil(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQ).WithArgs("theme").WillReturnError(sql.ErrNoRows)

	v, err := s.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestGet_DBError(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQ).WithArgs("k").WillReturnError(errors.New("db down"))

	_, err := s.Get(context.Background(), "k")
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(errMatch), err.Error())
}

func TestSet_Upserts(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectExec(upsertQ).WithArgs("theme", []byte("dark")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(context.Background(), "theme", []byte("dark")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSet_DBError(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectExec(upsertQ).WithArgs("theme", []byte("dark")).WillReturnError(errors.New("db down"))

	err := s.Set(context.Background(), "theme", []byte("dark"))
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(errMatch), err.Error())
}

func TestDeleteAndClear(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQ).WithArgs("k").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(clearQ).WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, s.Delete(context.Background(), "k"))
	require.NoError(t, s.Clear(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQ).WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
		AddRow("users", []byte(`[]`)).
		AddRow("theme", []byte(`dark`)))

	m, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"users": []byte(`[]`), "theme": []byte(`dark`)}, m)
}

func TestList_DBError(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQ).WillReturnError(errors.New("db down"))

	_, err := s.List(context.Background())
	require.Error(t, err)
}

func TestUpdate_LocksReadsAndWritesInTx(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(advLockQ).WithArgs("users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(lockQ).WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("a")))
	mock.ExpectExec(upsertQ).WithArgs("users", []byte("ab")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Update(context.Background(), "users", func(cur []byte) ([]byte, error) {
		return append(cur, 'b'), nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_FnErrorRollsBack(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(advLockQ).WithArgs("users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(lockQ).WithArgs("users").WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := s.Update(context.Background(), "users", func(cur []byte) ([]byte, error) {
		assert.Nil(t, cur)
		return nil, errors.New("boom")
	})
	require.EqualError(t, err, "boom")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_FirstWriteTakesAdvisoryLock(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(advLockQ).WithArgs("users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(lockQ).WithArgs("users").WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(upsertQ).WithArgs("users", []byte("a")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Update(context.Background(), "users", func(cur []byte) ([]byte, error) {
		assert.Nil(t, cur)
		return []byte("a"), nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_AdvisoryLockErrorRollsBack(t *testing.T) {
	s, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(advLockQ).WithArgs("users").WillReturnError(errors.New("db down"))
	mock.ExpectRollback()

	err := s.Update(context.Background(), "users", func(cur []byte) ([]byte, error) {
		t.Fatal("fn must not run without the lock")
		return nil, nil
	})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(errMatch), err.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}
