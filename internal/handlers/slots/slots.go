package slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shuttleclub/shuttleclub/internal/domain"
	"github.com/shuttleclub/shuttleclub/internal/dto"
	"github.com/shuttleclub/shuttleclub/internal/service/bookingservice"
	"github.com/shuttleclub/shuttleclub/internal/service/slotservice"
	"github.com/shuttleclub/shuttleclub/pkg/auth"
	"github.com/shuttleclub/shuttleclub/pkg/utils"
)

type SlotService interface {
	CreateSlot(ctx context.Context, startTime time.Time) (*domain.Slot, error)
	CreateRecurring(ctx context.Context, startTime time.Time, weeks int) ([]domain.Slot, error)
	ListSlots(ctx context.Context, from time.Time) ([]domain.Slot, error)
	SetAvailability(ctx context.Context, slotID string, available bool) (*domain.Slot, error)
}

type BookingService interface {
	BookSlot(ctx context.Context, memberID, slotID string) (*bookingservice.BookingResult, error)
	CancelSlot(ctx context.Context, memberID, slotID string) (*bookingservice.CancelResult, error)
}

type SlotsHandler struct {
	slotService    SlotService
	bookingService BookingService
}

func New(slotService SlotService, bookingService BookingService) *SlotsHandler {
	return &SlotsHandler{
		slotService:    slotService,
		bookingService: bookingService,
	}
}

// ListSlots godoc
//
//	@Summary		List upcoming slots
//	@Description	List slots starting from now, with waitlist sizes
//	@Tags			Slots
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SlotResponseDTO
//	@Failure		401	{object}	utils.Response	"Member not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/slots [get]
func (h *SlotsHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.slotService.ListSlots(r.Context(), time.Now())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.SlotResponseDTO, len(slots))
	for i, slot := range slots {
		response[i] = toSlotDTO(&slot)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateSlot godoc
//
//	@Summary		Create a slot
//	@Description	Create a single bookable slot (admin only)
//	@Tags			Slots
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateSlotRequestDTO	true	"Slot start time"
//	@Success		200		{object}	dto.SlotResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/slots [post]
func (h *SlotsHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSlotRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StartTime.IsZero() {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	slot, err := h.slotService.CreateSlot(r.Context(), req.StartTime)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSlotDTO(slot))
}

// CreateRecurring godoc
//
//	@Summary		Create recurring slots
//	@Description	Create one slot per week at the same time (admin only)
//	@Tags			Slots
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateRecurringRequestDTO	true	"Start time and number of weeks"
//	@Success		200		{array}		dto.SlotResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		422		{object}	utils.Response	"Invalid weeks"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/slots/recurring [post]
func (h *SlotsHandler) CreateRecurring(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRecurringRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StartTime.IsZero() {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	slots, err := h.slotService.CreateRecurring(r.Context(), req.StartTime, req.Weeks)
	if err != nil {
		if errors.Is(err, slotservice.ErrInvalidWeeks) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.SlotResponseDTO, len(slots))
	for i, slot := range slots {
		response[i] = toSlotDTO(&slot)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SetAvailability godoc
//
//	@Summary		Toggle slot availability
//	@Description	Hold or release a slot without booking it (admin only)
//	@Tags			Slots
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Slot ID"
//	@Param			request	body		dto.SetAvailabilityRequestDTO	true	"Availability flag"
//	@Success		200		{object}	dto.SlotResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"Slot not found"
//	@Failure		409		{object}	utils.Response	"Slot is booked"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/slots/{id}/availability [patch]
func (h *SlotsHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "id")
	var req dto.SetAvailabilityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	slot, err := h.slotService.SetAvailability(r.Context(), slotID, req.Available)
	if err != nil {
		switch {
		case errors.Is(err, slotservice.ErrSlotNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, slotservice.ErrSlotBooked):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSlotDTO(slot))
}

// BookSlot godoc
//
//	@Summary		Book a slot
//	@Description	Book the slot for the authenticated member, or join its waitlist when the slot is held
//	@Tags			Slots
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Slot ID"
//	@Success		200	{object}	dto.BookSlotResponseDTO
//	@Failure		401	{object}	utils.Response	"Member not authorized"
//	@Failure		402	{object}	utils.Response	"Insufficient balance"
//	@Failure		404	{object}	utils.Response	"Slot not found"
//	@Failure		409	{object}	utils.Response	"Slot taken or double booking"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/slots/{id}/book [post]
func (h *SlotsHandler) BookSlot(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.MemberIDKey).(string)
	slotID := chi.URLParam(r, "id")

	result, err := h.bookingService.BookSlot(r.Context(), memberID, slotID)
	if err != nil {
		respondBookingError(w, err)
		return
	}

	message := "slot booked"
	if result.Waitlisted {
		message = "added to waitlist"
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BookSlotResponseDTO{
		Message:          message,
		Waitlisted:       result.Waitlisted,
		WaitlistPosition: result.WaitlistPosition,
		Balance:          result.Balance,
	})
}

// CancelSlot godoc
//
//	@Summary		Cancel a booking
//	@Description	Cancel the member's booking; refunds apply outside the cancellation deadline
//	@Tags			Slots
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Slot ID"
//	@Success		200	{object}	dto.CancelSlotResponseDTO
//	@Failure		401	{object}	utils.Response	"Member not authorized"
//	@Failure		403	{object}	utils.Response	"Booked by another member"
//	@Failure		404	{object}	utils.Response	"Slot not found"
//	@Failure		409	{object}	utils.Response	"Slot not booked"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/slots/{id}/cancel [post]
func (h *SlotsHandler) CancelSlot(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.MemberIDKey).(string)
	slotID := chi.URLParam(r, "id")

	result, err := h.bookingService.CancelSlot(r.Context(), memberID, slotID)
	if err != nil {
		respondBookingError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CancelSlotResponseDTO{
		Message:          "booking cancelled",
		Refunded:         result.Refunded,
		RefundAmount:     result.RefundAmount,
		PromotedMemberID: result.PromotedMemberID,
		Balance:          result.Balance,
	})
}

func respondBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bookingservice.ErrSlotNotFound),
		errors.Is(err, bookingservice.ErrMemberNotFound),
		errors.Is(err, bookingservice.ErrSettingsNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bookingservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, bookingservice.ErrAlreadyBooked),
		errors.Is(err, bookingservice.ErrNotAvailable),
		errors.Is(err, bookingservice.ErrDoubleBooking),
		errors.Is(err, bookingservice.ErrAlreadyOnWaitlist),
		errors.Is(err, bookingservice.ErrNotBooked):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, bookingservice.ErrNotOwner):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toSlotDTO(slot *domain.Slot) dto.SlotResponseDTO {
	return dto.SlotResponseDTO{
		ID:          slot.ID,
		StartTime:   slot.StartTime,
		IsBooked:    slot.IsBooked,
		BookedBy:    slot.BookedBy,
		Available:   slot.Available,
		WaitlistLen: slot.WaitlistLen,
	}
}
