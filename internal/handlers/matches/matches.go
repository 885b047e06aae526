package matches

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shuttleclub/shuttleclub/internal/domain"
	"github.com/shuttleclub/shuttleclub/internal/dto"
	matchservice "github.com/shuttleclub/shuttleclub/internal/service/matchservice"
	"github.com/shuttleclub/shuttleclub/internal/service/ratingservice"
	"github.com/shuttleclub/shuttleclub/pkg/auth"
	"github.com/shuttleclub/shuttleclub/pkg/utils"
)

type Service interface {
	CreateMatch(ctx context.Context, creatorID string, input matchservice.CreateMatchInput) (*domain.Match, error)
	ConfirmMatch(ctx context.Context, actorID, matchID string, score1, score2 *int) (*domain.Match, []ratingservice.RatingDelta, error)
	RejectMatch(ctx context.Context, adminID, matchID string) (*domain.Match, error)
	RequestCancellation(ctx context.Context, actorID, matchID string) (*domain.Match, error)
	ProcessCancellation(ctx context.Context, adminID, matchID, action string) (*domain.Match, error)
	AdminUpdateMatch(ctx context.Context, adminID, matchID string, updates matchservice.AdminMatchUpdate) (*domain.Match, error)
	GetMatch(ctx context.Context, matchID string) (*domain.Match, error)
}

type HistoryService interface {
	GetHistory(ctx context.Context, memberID string) ([]domain.MatchHistoryEntry, error)
}

type MatchesHandler struct {
	matchService   Service
	historyService HistoryService
}

func New(matchService Service, historyService HistoryService) *MatchesHandler {
	return &MatchesHandler{
		matchService:   matchService,
		historyService: historyService,
	}
}

// CreateMatch godoc
//
//	@Summary		Record a match
//	@Description	Create a match between two teams; the creator counts as confirmed
//	@Tags			Matches
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateMatchRequestDTO	true	"Match payload"
//	@Success		200		{object}	dto.MatchResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		422		{object}	utils.Response	"Invalid teams or scores"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/matches [post]
func (h *MatchesHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.MemberIDKey).(string)

	var req dto.CreateMatchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	match, err := h.matchService.CreateMatch(r.Context(), memberID, matchservice.CreateMatchInput{
		Team1:    req.Team1,
		Team2:    req.Team2,
		GameType: req.GameType,
		SlotTime: req.SlotTime,
		Score1:   req.Score1,
		Score2:   req.Score2,
	})
	if err != nil {
		respondMatchError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMatchDTO(match))
}

// ConfirmMatch godoc
//
//	@Summary		Confirm a match
//	@Description	Confirm participation, optionally submitting scores; ratings apply once scores and an opponent confirmation exist
//	@Tags			Matches
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Match ID"
//	@Param			request	body		dto.ConfirmMatchRequestDTO	true	"Optional scores"
//	@Success		200		{object}	dto.ConfirmMatchResponseDTO
//	@Failure		403		{object}	utils.Response	"Not a participant"
//	@Failure		404		{object}	utils.Response	"Match not found"
//	@Failure		409		{object}	utils.Response	"Already confirmed or wrong status"
//	@Failure		422		{object}	utils.Response	"Invalid scores"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/matches/{id}/confirm [post]
func (h *MatchesHandler) ConfirmMatch(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.MemberIDKey).(string)
	matchID := chi.URLParam(r, "id")

	var req dto.ConfirmMatchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	match, deltas, err := h.matchService.ConfirmMatch(r.Context(), memberID, matchID, req.Score1, req.Score2)
	if err != nil {
		respondMatchError(w, err)
		return
	}

	response := dto.ConfirmMatchResponseDTO{Match: toMatchDTO(match)}
	for _, delta := range deltas {
		response.RatingUpdates = append(response.RatingUpdates, dto.RatingDeltaDTO{
			MemberID:  delta.MemberID,
			OldRating: delta.OldRating,
			NewRating: delta.NewRating,
			Change:    delta.Change,
			Outcome:   delta.Outcome,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetMatch godoc
//
//	@Summary	Get a match
//	@Tags		Matches
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Match ID"
//	@Success	200	{object}	dto.MatchResponseDTO
//	@Failure	404	{object}	utils.Response	"Match not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/matches/{id} [get]
func (h *MatchesHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "id")

	match, err := h.matchService.GetMatch(r.Context(), matchID)
	if err != nil {
		respondMatchError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMatchDTO(match))
}

// RejectMatch godoc
//
//	@Summary		Reject a match
//	@Description	Strike down a non-terminal match (admin only)
//	@Tags			Matches
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Match ID"
//	@Success		200	{object}	dto.MatchResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Match not found"
//	@Failure		409	{object}	utils.Response	"Match already terminal"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/matches/{id}/reject [post]
func (h *MatchesHandler) RejectMatch(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.MemberIDKey).(string)
	matchID := chi.URLParam(r, "id")

	match, err := h.matchService.RejectMatch(r.Context(), adminID, matchID)
	if err != nil {
		respondMatchError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMatchDTO(match))
}

// RequestCancellation godoc
//
//	@Summary		Request match cancellation
//	@Description	Ask an admin to void the match; the current status is kept for a possible revert
//	@Tags			Matches
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Match ID"
//	@Success		200	{object}	dto.MatchResponseDTO
//	@Failure		403	{object}	utils.Response	"Not a participant"
//	@Failure		404	{object}	utils.Response	"Match not found"
//	@Failure		409	{object}	utils.Response	"Wrong status"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/matches/{id}/cancellation-request [post]
func (h *MatchesHandler) RequestCancellation(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.MemberIDKey).(string)
	matchID := chi.URLParam(r, "id")

	match, err := h.matchService.RequestCancellation(r.Context(), memberID, matchID)
	if err != nil {
		respondMatchError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMatchDTO(match))
}

// ProcessCancellation godoc
//
//	@Summary		Process a cancellation request
//	@Description	Approve (match cancelled) or reject (match reverts to its prior status) a cancellation request (admin only)
//	@Tags			Matches
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Match ID"
//	@Param			request	body		dto.ProcessCancellationRequestDTO	true	"approve or reject"
//	@Success		200		{object}	dto.MatchResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown action"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"Match not found"
//	@Failure		409		{object}	utils.Response	"No pending cancellation request"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/matches/{id}/cancellation [post]
func (h *MatchesHandler) ProcessCancellation(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.MemberIDKey).(string)
	matchID := chi.URLParam(r, "id")

	var req dto.ProcessCancellationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	match, err := h.matchService.ProcessCancellation(r.Context(), adminID, matchID, req.Action)
	if err != nil {
		respondMatchError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMatchDTO(match))
}

// AdminUpdateMatch godoc
//
//	@Summary		Patch a match
//	@Description	Unrestricted field patch of a match (admin only)
//	@Tags			Matches
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Match ID"
//	@Param			request	body		dto.AdminUpdateMatchRequestDTO	true	"Fields to patch"
//	@Success		200		{object}	dto.MatchResponseDTO
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"Match not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/matches/{id} [patch]
func (h *MatchesHandler) AdminUpdateMatch(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.MemberIDKey).(string)
	matchID := chi.URLParam(r, "id")

	var req dto.AdminUpdateMatchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	match, err := h.matchService.AdminUpdateMatch(r.Context(), adminID, matchID, matchservice.AdminMatchUpdate{
		Score1:   req.Score1,
		Score2:   req.Score2,
		Status:   req.Status,
		GameType: req.GameType,
		SlotTime: req.SlotTime,
	})
	if err != nil {
		respondMatchError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMatchDTO(match))
}

// GetHistory godoc
//
//	@Summary		Get match history
//	@Description	Get the authenticated member's rating history, newest first
//	@Tags			Matches
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.MatchHistoryResponseDTO
//	@Success		204	{object}	utils.Response	"No history"
//	@Failure		401	{object}	utils.Response	"Member not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/members/me/history [get]
func (h *MatchesHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.MemberIDKey).(string)

	entries, err := h.historyService.GetHistory(r.Context(), memberID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch match history")
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Match history not found")
		return
	}

	response := make([]dto.MatchHistoryResponseDTO, len(entries))
	for i, entry := range entries {
		response[i] = dto.MatchHistoryResponseDTO{
			MatchID:      entry.MatchID,
			OldRating:    entry.OldRating,
			NewRating:    entry.NewRating,
			RatingChange: entry.RatingChange,
			Outcome:      entry.Outcome,
			Teammates:    entry.Teammates,
			Opponents:    entry.Opponents,
			Score1:       entry.Score1,
			Score2:       entry.Score2,
			CreatedAt:    entry.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondMatchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, matchservice.ErrMatchNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, matchservice.ErrNotParticipant):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, matchservice.ErrAlreadyConfirmed), errors.Is(err, matchservice.ErrInvalidStatus):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, matchservice.ErrInvalidScore), errors.Is(err, matchservice.ErrInvalidTeams):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, matchservice.ErrInvalidAction):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toMatchDTO(match *domain.Match) dto.MatchResponseDTO {
	return dto.MatchResponseDTO{
		ID:          match.ID,
		Team1:       match.Team1,
		Team2:       match.Team2,
		SlotTime:    match.SlotTime,
		GameType:    match.GameType,
		Score1:      match.Score1,
		Score2:      match.Score2,
		Status:      match.Status,
		CreatedBy:   match.CreatedBy,
		ConfirmedBy: match.ConfirmedBy,
	}
}
