package settingsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/yeswin/wingo/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT next_result, next_result_track`)).
		WillReturnRows(pgxmock.NewRows([]string{"next_result", "next_result_track"}).
			AddRow(domain.NextResultBig, domain.Track5Min))

	settings, err := repo.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, &domain.Settings{
		NextResult:      domain.NextResultBig,
		NextResultTrack: domain.Track5Min,
	}, settings)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT next_result, next_result_track`)).
		WillReturnError(errors.New("database error"))

	settings, err = repo.Get(context.Background())
	assert.Error(t, err)
	assert.Nil(t, settings)
}

func TestRepository_SetNextResult(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET next_result = $1, next_result_track = $2`)).
		WithArgs(domain.NextResultSmall, domain.Track1Min).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetNextResult(context.Background(), domain.NextResultSmall, domain.Track1Min)
	assert.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`SET next_result = $1, next_result_track = $2`)).
		WithArgs(domain.NextResultAuto, domain.Track1Min).
		WillReturnError(errors.New("database error"))

	err = repo.SetNextResult(context.Background(), domain.NextResultAuto, domain.Track1Min)
	assert.Error(t, err)
}
