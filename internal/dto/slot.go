package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateSlotRequestDTO struct {
	StartTime time.Time `json:"start_time" example:"2026-09-07T18:00:00Z"`
}

type CreateRecurringRequestDTO struct {
	StartTime time.Time `json:"start_time" example:"2026-09-07T18:00:00Z"`
	Weeks     int       `json:"weeks" example:"8"`
}

type SetAvailabilityRequestDTO struct {
	Available bool `json:"available"`
}

type SlotResponseDTO struct {
	ID          string    `json:"id"`
	StartTime   time.Time `json:"start_time"`
	IsBooked    bool      `json:"is_booked"`
	BookedBy    string    `json:"booked_by,omitempty"`
	Available   bool      `json:"available"`
	WaitlistLen int       `json:"waitlist_len"`
}

type BookSlotResponseDTO struct {
	Message          string          `json:"message"`
	Waitlisted       bool            `json:"waitlisted"`
	WaitlistPosition int             `json:"waitlist_position,omitempty"`
	Balance          decimal.Decimal `json:"balance"`
}

type CancelSlotResponseDTO struct {
	Message          string          `json:"message"`
	Refunded         bool            `json:"refunded"`
	RefundAmount     decimal.Decimal `json:"refund_amount"`
	PromotedMemberID string          `json:"promoted_member_id,omitempty"`
	Balance          decimal.Decimal `json:"balance"`
}
