package dto

import "time"

type CreateMatchRequestDTO struct {
	Team1    []string  `json:"team1"`
	Team2    []string  `json:"team2"`
	GameType string    `json:"game_type" example:"singles"`
	SlotTime time.Time `json:"slot_time"`
	Score1   *int      `json:"score1,omitempty"`
	Score2   *int      `json:"score2,omitempty"`
}

type ConfirmMatchRequestDTO struct {
	Score1 *int `json:"score1,omitempty"`
	Score2 *int `json:"score2,omitempty"`
}

type ProcessCancellationRequestDTO struct {
	Action string `json:"action" example:"approve"`
}

type AdminUpdateMatchRequestDTO struct {
	Score1   *int       `json:"score1,omitempty"`
	Score2   *int       `json:"score2,omitempty"`
	Status   *string    `json:"status,omitempty"`
	GameType *string    `json:"game_type,omitempty"`
	SlotTime *time.Time `json:"slot_time,omitempty"`
}

type MatchResponseDTO struct {
	ID          string    `json:"id"`
	Team1       []string  `json:"team1"`
	Team2       []string  `json:"team2"`
	SlotTime    time.Time `json:"slot_time"`
	GameType    string    `json:"game_type"`
	Score1      *int      `json:"score1,omitempty"`
	Score2      *int      `json:"score2,omitempty"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	ConfirmedBy []string  `json:"confirmed_by"`
}

type RatingDeltaDTO struct {
	MemberID  string `json:"member_id"`
	OldRating int    `json:"old_rating"`
	NewRating int    `json:"new_rating"`
	Change    int    `json:"change"`
	Outcome   string `json:"outcome"`
}

type ConfirmMatchResponseDTO struct {
	Match         MatchResponseDTO `json:"match"`
	RatingUpdates []RatingDeltaDTO `json:"rating_updates,omitempty"`
}

type MatchHistoryResponseDTO struct {
	MatchID      string    `json:"match_id"`
	OldRating    int       `json:"old_rating"`
	NewRating    int       `json:"new_rating"`
	RatingChange int       `json:"rating_change"`
	Outcome      string    `json:"outcome"`
	Teammates    []string  `json:"teammates"`
	Opponents    []string  `json:"opponents"`
	Score1       int       `json:"score1"`
	Score2       int       `json:"score2"`
	CreatedAt    time.Time `json:"created_at"`
}
