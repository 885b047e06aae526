package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/shuttleclub/shuttleclub/internal/domain"
	"github.com/shuttleclub/shuttleclub/internal/dto"
	balanceservice "github.com/shuttleclub/shuttleclub/internal/service/balanceservice"
	"github.com/shuttleclub/shuttleclub/pkg/auth"
	"github.com/shuttleclub/shuttleclub/pkg/utils"
	"github.com/shuttleclub/shuttleclub/pkg/validate"
)

type Service interface {
	GetBalance(ctx context.Context, memberID string) (*domain.Member, error)
	ProcessTopUp(ctx context.Context, memberID string, amount decimal.Decimal) (*balanceservice.TopUpResult, error)
	GetTransactions(ctx context.Context, memberID string) ([]domain.LedgerEntry, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current member balance
//	@Description	Retrieve the current balance and outstanding registration fee for the authenticated member.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance and fee due"
//	@Failure		401	{object}	utils.Response			"Member not authorized"
//	@Failure		404	{object}	utils.Response			"Member not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.MemberIDKey).(string)

	member, err := h.balanceService.GetBalance(r.Context(), memberID)
	if err != nil {
		if errors.Is(err, balanceservice.ErrMemberNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance:            member.Balance,
		RegistrationFeeDue: member.RegistrationFeeDue,
	})
}

// TopUp godoc
//
//	@Summary		Top up the balance
//	@Description	Credit the member balance; any pending registration fee is settled from the fresh funds first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TopUpRequestDTO	true	"Top-up payload"
//	@Success		200		{object}	dto.TopUpResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Member not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid amount or card number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/balance/topup [post]
func (h *BalanceHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.MemberIDKey).(string)

	var req dto.TopUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.CardNumber != "" && !validate.IsLuna(req.CardNumber) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}

	result, err := h.balanceService.ProcessTopUp(r.Context(), memberID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, balanceservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, balanceservice.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TopUpResponseDTO{
		Message:    "top-up successful",
		Credited:   result.Credited,
		FeeSettled: result.FeeSettled,
		Balance:    result.Balance,
	})
}

// GetTransactions godoc
//
//	@Summary		Get ledger statement
//	@Description	Get the member's balance-change history, newest first
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"Member not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/balance/transactions [get]
func (h *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.MemberIDKey).(string)

	entries, err := h.balanceService.GetTransactions(r.Context(), memberID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(entries))
	for i, entry := range entries {
		response[i] = dto.TransactionResponseDTO{
			Amount:      entry.Amount,
			Type:        entry.Type,
			Description: entry.Description,
			RelatedID:   entry.RelatedID,
			CreatedAt:   entry.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
