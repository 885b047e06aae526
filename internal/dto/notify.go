package dto

type TokenRequestDTO struct {
	Token string `json:"token" validate:"required"`
}
