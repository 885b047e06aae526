package notifications

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shuttleclub/shuttleclub/internal/dto"
	"github.com/shuttleclub/shuttleclub/pkg/auth"
	"github.com/shuttleclub/shuttleclub/pkg/utils"
)

type Service interface {
	RegisterToken(ctx context.Context, memberID, token string) error
	UnregisterToken(ctx context.Context, memberID, token string) error
}

type NotificationsHandler struct {
	notifyService Service
}

func New(notifyService Service) *NotificationsHandler {
	return &NotificationsHandler{
		notifyService: notifyService,
	}
}

// RegisterToken godoc
//
//	@Summary		Register a push token
//	@Description	Attach an FCM device token to the authenticated member; re-registering the same token is a no-op
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TokenRequestDTO	true	"Device token"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Member not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications/token [post]
func (h *NotificationsHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.MemberIDKey).(string)

	var req dto.TokenRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.notifyService.RegisterToken(r.Context(), memberID, req.Token); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "token registered"})
}

// UnregisterToken godoc
//
//	@Summary		Remove a push token
//	@Description	Detach an FCM device token from the authenticated member
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TokenRequestDTO	true	"Device token"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Member not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications/token [delete]
func (h *NotificationsHandler) UnregisterToken(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.MemberIDKey).(string)

	var req dto.TokenRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.notifyService.UnregisterToken(r.Context(), memberID, req.Token); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to unregister token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "token removed"})
}
