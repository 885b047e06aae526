package dto

import (
	"github.com/shopspring/decimal"
)

type SettingsResponseDTO struct {
	SlotBookingCost           decimal.Decimal `json:"slot_booking_cost" example:"4"`
	MinBalanceForBooking      decimal.Decimal `json:"min_balance_for_booking" example:"4"`
	CancellationDeadlineHours int             `json:"cancellation_deadline_hours" example:"24"`
	RegistrationFee           decimal.Decimal `json:"registration_fee" example:"10"`
}

type UpdateSettingsRequestDTO struct {
	SlotBookingCost           decimal.Decimal `json:"slot_booking_cost" example:"4"`
	MinBalanceForBooking      decimal.Decimal `json:"min_balance_for_booking" example:"4"`
	CancellationDeadlineHours int             `json:"cancellation_deadline_hours" example:"24"`
	RegistrationFee           decimal.Decimal `json:"registration_fee" example:"10"`
}
