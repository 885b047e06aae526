package tokenrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_Register(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO fcm_tokens`)).
		WithArgs("m1", "tok1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Register(context.Background(), "m1", "tok1"))

	// Re-registering the same token is a no-op, not an error.
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO fcm_tokens`)).
		WithArgs("m1", "tok1").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	assert.NoError(t, repo.Register(context.Background(), "m1", "tok1"))

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO fcm_tokens`)).
		WithArgs("m1", "tok1").
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Register(context.Background(), "m1", "tok1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Unregister(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM fcm_tokens`)).
		WithArgs("m1", "tok1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Unregister(context.Background(), "m1", "tok1"))

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM fcm_tokens`)).
		WithArgs("m1", "tok1").
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Unregister(context.Background(), "m1", "tok1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByMember(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"token"}).
		AddRow("tok1").
		AddRow("tok2")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM fcm_tokens`)).
		WithArgs("m1").
		WillReturnRows(rows)

	tokens, err := repo.ListByMember(context.Background(), "m1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"tok1", "tok2"}, tokens)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM fcm_tokens`)).
		WithArgs("m1").
		WillReturnError(errors.New("database error"))
	_, err = repo.ListByMember(context.Background(), "m1")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
