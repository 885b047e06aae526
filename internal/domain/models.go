package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type Member struct {
	ID                 string          `db:"id"`
	Login              string          `db:"login"`
	PasswordHash       string          `db:"password_hash"`
	Name               string          `db:"name"`
	Role               string          `db:"role"`
	Rating             int             `db:"rating"`
	GamesPlayed        int             `db:"games_played"`
	Wins               int             `db:"wins"`
	Losses             int             `db:"losses"`
	Draws              int             `db:"draws"`
	Balance            decimal.Decimal `db:"balance"`
	RegistrationFeeDue decimal.Decimal `db:"registration_fee_due"`
	CreatedAt          time.Time       `db:"created_at"`
}

// Slot is one bookable court-time unit. Cancellation resets the booking
// fields; slots are never deleted. Available=false with IsBooked=false is the
// admin-held state: booking attempts against it go to the waitlist.
type Slot struct {
	ID          string    `db:"id"`
	StartTime   time.Time `db:"start_time"`
	IsBooked    bool      `db:"is_booked"`
	BookedBy    string    `db:"booked_by"`
	Available   bool      `db:"available"`
	CreatedAt   time.Time `db:"created_at"`
	WaitlistLen int       `db:"-"`
}

type WaitlistEntry struct {
	SlotID   string    `db:"slot_id"`
	MemberID string    `db:"member_id"`
	AddedAt  time.Time `db:"added_at"`
}

const (
	TxTypeBooking                 = "booking"
	TxTypeCancellationRefund      = "cancellation_refund"
	TxTypeCancellationNoRefund    = "cancellation_no_refund"
	TxTypeRegistrationFee         = "registration_fee"
	TxTypeTopUp                   = "top_up"
	TxTypeRegistrationFeeDeducted = "registration_fee_deducted"
)

// LedgerEntry is an immutable balance-change record. Append-only: the ledger
// repo exposes no update or delete.
type LedgerEntry struct {
	ID          string          `db:"id"`
	MemberID    string          `db:"member_id"`
	Amount      decimal.Decimal `db:"amount"`
	Type        string          `db:"type"`
	Description string          `db:"description"`
	RelatedID   *string         `db:"related_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

type Match struct {
	ID                      string     `db:"id"`
	Team1                   []string   `db:"team1"`
	Team2                   []string   `db:"team2"`
	SlotTime                time.Time  `db:"slot_time"`
	GameType                string     `db:"game_type"`
	Score1                  *int       `db:"score1"`
	Score2                  *int       `db:"score2"`
	Status                  string     `db:"status"`
	PreviousStatus          *string    `db:"previous_status"`
	CreatedBy               string     `db:"created_by"`
	ConfirmedBy             []string   `db:"confirmed_by"`
	SubmittedBy             *string    `db:"submitted_by"`
	SubmittedAt             *time.Time `db:"submitted_at"`
	RejectedBy              *string    `db:"rejected_by"`
	RejectedAt              *time.Time `db:"rejected_at"`
	CancellationRequestedBy *string    `db:"cancellation_requested_by"`
	CancellationRequestedAt *time.Time `db:"cancellation_requested_at"`
	CreatedAt               time.Time  `db:"created_at"`
	UpdatedAt               time.Time  `db:"updated_at"`
}

// Players returns both teams flattened, team1 first.
func (m *Match) Players() []string {
	players := make([]string, 0, len(m.Team1)+len(m.Team2))
	players = append(players, m.Team1...)
	players = append(players, m.Team2...)
	return players
}

func (m *Match) HasPlayer(memberID string) bool {
	for _, id := range m.Players() {
		if id == memberID {
			return true
		}
	}
	return false
}

func (m *Match) HasConfirmed(memberID string) bool {
	for _, id := range m.ConfirmedBy {
		if id == memberID {
			return true
		}
	}
	return false
}

// MatchHistoryEntry is a write-once per-member snapshot of a confirmed
// match's effect on their rating.
type MatchHistoryEntry struct {
	ID           string    `db:"id"`
	MatchID      string    `db:"match_id"`
	MemberID     string    `db:"member_id"`
	OldRating    int       `db:"old_rating"`
	NewRating    int       `db:"new_rating"`
	RatingChange int       `db:"rating_change"`
	Outcome      string    `db:"outcome"`
	Teammates    []string  `db:"teammates"`
	Opponents    []string  `db:"opponents"`
	Score1       int       `db:"score1"`
	Score2       int       `db:"score2"`
	CreatedAt    time.Time `db:"created_at"`
}

// AppSettings is the singleton booking policy row. It is read once per
// operation inside the transaction and passed around as a value.
type AppSettings struct {
	SlotBookingCost           decimal.Decimal `db:"slot_booking_cost"`
	MinBalanceForBooking      decimal.Decimal `db:"min_balance_for_booking"`
	CancellationDeadlineHours int             `db:"cancellation_deadline_hours"`
	RegistrationFee           decimal.Decimal `db:"registration_fee"`
}

type FCMToken struct {
	MemberID  string    `db:"member_id"`
	Token     string    `db:"token"`
	CreatedAt time.Time `db:"created_at"`
}
