package repo

import (
	"github.com/shuttleclub/shuttleclub/internal/pg"
	historyrepo "github.com/shuttleclub/shuttleclub/internal/repo/history-repo"
	ledgerrepo "github.com/shuttleclub/shuttleclub/internal/repo/ledger-repo"
	matchrepo "github.com/shuttleclub/shuttleclub/internal/repo/match-repo"
	memberrepo "github.com/shuttleclub/shuttleclub/internal/repo/member-repo"
	settingsrepo "github.com/shuttleclub/shuttleclub/internal/repo/settings-repo"
	slotrepo "github.com/shuttleclub/shuttleclub/internal/repo/slot-repo"
	tokenrepo "github.com/shuttleclub/shuttleclub/internal/repo/token-repo"
)

type Repositories struct {
	MemberRepo   *memberrepo.Repository
	SlotRepo     *slotrepo.Repository
	MatchRepo    *matchrepo.Repository
	HistoryRepo  *historyrepo.Repository
	LedgerRepo   *ledgerrepo.Repository
	SettingsRepo *settingsrepo.Repository
	TokenRepo    *tokenrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		MemberRepo:   memberrepo.New(conn),
		SlotRepo:     slotrepo.New(conn),
		MatchRepo:    matchrepo.New(conn),
		HistoryRepo:  historyrepo.New(conn),
		LedgerRepo:   ledgerrepo.New(conn),
		SettingsRepo: settingsrepo.New(conn),
		TokenRepo:    tokenrepo.New(conn),
	}
}
