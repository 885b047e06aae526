package repo

import (
	"testing"

	historyrepo "github.com/shuttleclub/shuttleclub/internal/repo/history-repo"
	ledgerrepo "github.com/shuttleclub/shuttleclub/internal/repo/ledger-repo"
	matchrepo "github.com/shuttleclub/shuttleclub/internal/repo/match-repo"
	memberrepo "github.com/shuttleclub/shuttleclub/internal/repo/member-repo"
	settingsrepo "github.com/shuttleclub/shuttleclub/internal/repo/settings-repo"
	slotrepo "github.com/shuttleclub/shuttleclub/internal/repo/slot-repo"
	tokenrepo "github.com/shuttleclub/shuttleclub/internal/repo/token-repo"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.MemberRepo)
	assert.NotNil(t, repo.SlotRepo)
	assert.NotNil(t, repo.MatchRepo)
	assert.NotNil(t, repo.HistoryRepo)
	assert.NotNil(t, repo.LedgerRepo)
	assert.NotNil(t, repo.SettingsRepo)
	assert.NotNil(t, repo.TokenRepo)

	assert.IsType(t, &memberrepo.Repository{}, repo.MemberRepo)
	assert.IsType(t, &slotrepo.Repository{}, repo.SlotRepo)
	assert.IsType(t, &matchrepo.Repository{}, repo.MatchRepo)
	assert.IsType(t, &historyrepo.Repository{}, repo.HistoryRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &settingsrepo.Repository{}, repo.SettingsRepo)
	assert.IsType(t, &tokenrepo.Repository{}, repo.TokenRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
