package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BalanceResponseDTO struct {
	Balance            decimal.Decimal `json:"balance" example:"10"`
	RegistrationFeeDue decimal.Decimal `json:"registration_fee_due" example:"0"`
}

type TopUpRequestDTO struct {
	Amount     decimal.Decimal `json:"amount" example:"50"`
	CardNumber string          `json:"card_number,omitempty" example:"2377225624"`
}

type TopUpResponseDTO struct {
	Message    string          `json:"message"`
	Credited   decimal.Decimal `json:"credited"`
	FeeSettled decimal.Decimal `json:"fee_settled"`
	Balance    decimal.Decimal `json:"balance"`
}

type TransactionResponseDTO struct {
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	RelatedID   *string         `json:"related_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
