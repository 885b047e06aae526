package settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shuttleclub/shuttleclub/internal/domain"
	"github.com/shuttleclub/shuttleclub/internal/dto"
	settingsservice "github.com/shuttleclub/shuttleclub/internal/service/settingsservice"
	"github.com/shuttleclub/shuttleclub/pkg/utils"
)

type Service interface {
	GetSettings(ctx context.Context) (*domain.AppSettings, error)
	UpdateSettings(ctx context.Context, settings *domain.AppSettings) (*domain.AppSettings, error)
}

type SettingsHandler struct {
	settingsService Service
}

func New(settingsService Service) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings godoc
//
//	@Summary		Get club settings
//	@Description	Current booking policy: slot cost, minimum balance, cancellation deadline, registration fee
//	@Tags			Settings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SettingsResponseDTO
//	@Failure		401	{object}	utils.Response	"Member not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Settings not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/settings [get]
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetSettings(r.Context())
	if err != nil {
		if errors.Is(err, settingsservice.ErrSettingsNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettingsResponseDTO{
		SlotBookingCost:           settings.SlotBookingCost,
		MinBalanceForBooking:      settings.MinBalanceForBooking,
		CancellationDeadlineHours: settings.CancellationDeadlineHours,
		RegistrationFee:           settings.RegistrationFee,
	})
}

// UpdateSettings godoc
//
//	@Summary		Update club settings
//	@Description	Replace the booking policy. Takes effect for operations that start after the update commits.
//	@Tags			Settings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateSettingsRequestDTO	true	"New settings"
//	@Success		200		{object}	dto.SettingsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Member not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		422		{object}	utils.Response	"Invalid settings values"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/settings [patch]
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.settingsService.UpdateSettings(r.Context(), &domain.AppSettings{
		SlotBookingCost:           req.SlotBookingCost,
		MinBalanceForBooking:      req.MinBalanceForBooking,
		CancellationDeadlineHours: req.CancellationDeadlineHours,
		RegistrationFee:           req.RegistrationFee,
	})
	if err != nil {
		if errors.Is(err, settingsservice.ErrInvalidSettings) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettingsResponseDTO{
		SlotBookingCost:           updated.SlotBookingCost,
		MinBalanceForBooking:      updated.MinBalanceForBooking,
		CancellationDeadlineHours: updated.CancellationDeadlineHours,
		RegistrationFee:           updated.RegistrationFee,
	})
}
