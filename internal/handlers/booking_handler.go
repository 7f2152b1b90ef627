package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slotframe-app/slotframe/internal/httperr"
	"github.com/slotframe-app/slotframe/internal/middleware"
	ucSchedule "github.com/slotframe-app/slotframe/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	confirmBookingUC *ucSchedule.ConfirmBooking
	cancelBookingUC  *ucSchedule.CancelBooking
}

func NewBookingHandler(
	confirmBookingUC *ucSchedule.ConfirmBooking,
	cancelBookingUC *ucSchedule.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		confirmBookingUC: confirmBookingUC,
		cancelBookingUC:  cancelBookingUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ConfirmBookingRequest struct {
	Date string `json:"date" binding:"required"` // RFC3339
}

type CancelBookingRequest struct {
	Date string `json:"date" binding:"required"` // RFC3339
}

// ======================================================
// CONFIRM
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	frameID := c.Param("id")

	var req ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	date, err := parseDateTime(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be an RFC3339 timestamp.")
		return
	}

	ap, err := h.confirmBookingUC.Execute(c.Request.Context(), ucSchedule.ConfirmBookingInput{
		ScheduleFrameID: frameID,
		UserID:          userID,
		Date:            date,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "frame_not_found"):
			httperr.NotFound(c, "frame_not_found", "Schedule frame not found.")
		case httperr.IsBusiness(err, "user_not_found"):
			httperr.NotFound(c, "user_not_found", "User not found.")
		case httperr.IsBusiness(err, "slot_not_found"):
			httperr.NotFound(c, "slot_not_found", "No slot matches that date.")
		case httperr.IsBusiness(err, "slot_unavailable"):
			httperr.Conflict(c, "slot_unavailable", "That slot is already booked.")
		default:
			httperr.Internal(c, "failed_to_confirm_booking", "Failed to confirm booking.")
		}
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// CANCEL (admin)
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)
	frameID := c.Param("id")

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	date, err := parseDateTime(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be an RFC3339 timestamp.")
		return
	}

	err = h.cancelBookingUC.Execute(c.Request.Context(), ucSchedule.CancelBookingInput{
		ScheduleFrameID: frameID,
		Date:            date,
		ActorID:         actorID,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "frame_not_found"):
			httperr.NotFound(c, "frame_not_found", "Schedule frame not found.")
		case httperr.IsBusiness(err, "slot_not_found"):
			httperr.NotFound(c, "slot_not_found", "No slot matches that date.")
		case httperr.IsBusiness(err, "invalid_state"), httperr.IsBusiness(err, "slot_not_booked"):
			httperr.Conflict(c, "slot_not_booked", "That slot is not booked.")
		default:
			httperr.Internal(c, "failed_to_cancel_booking", "Failed to cancel booking.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
