package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/slotframe-app/slotframe/internal/domain/schedule"
	"github.com/slotframe-app/slotframe/internal/httperr"
	"github.com/slotframe-app/slotframe/internal/httpresp"
	"github.com/slotframe-app/slotframe/internal/middleware"
	ucSchedule "github.com/slotframe-app/slotframe/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleFrameHandler struct {
	generateSlotsUC *ucSchedule.GenerateSlots
	createFrameUC   *ucSchedule.CreateFrame
	listFramesUC    *ucSchedule.ListFrames
	getFrameUC      *ucSchedule.GetFrame
	deleteFrameUC   *ucSchedule.DeleteFrame
}

func NewScheduleFrameHandler(
	generateSlotsUC *ucSchedule.GenerateSlots,
	createFrameUC *ucSchedule.CreateFrame,
	listFramesUC *ucSchedule.ListFrames,
	getFrameUC *ucSchedule.GetFrame,
	deleteFrameUC *ucSchedule.DeleteFrame,
) *ScheduleFrameHandler {
	return &ScheduleFrameHandler{
		generateSlotsUC: generateSlotsUC,
		createFrameUC:   createFrameUC,
		listFramesUC:    listFramesUC,
		getFrameUC:      getFrameUC,
		deleteFrameUC:   deleteFrameUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type GenerateSlotsRequest struct {
	StartDate       string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate         string `json:"end_date" binding:"required"`   // YYYY-MM-DD
	IntervalMinutes int    `json:"interval_minutes"`
}

type CreateFrameRequest struct {
	Title string   `json:"title" binding:"required"`
	Dates []string `json:"dates" binding:"required"` // RFC3339
}

// ======================================================
// GENERATE (admin preview before frame creation)
// ======================================================

func (h *ScheduleFrameHandler) GenerateSlots(c *gin.Context) {
	var req GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_date", "Start date is invalid.")
		return
	}

	end, err := parseDate(req.EndDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_date", "End date is invalid.")
		return
	}

	slots, err := h.generateSlotsUC.Execute(domain.GenerateInput{
		StartDate:       start,
		EndDate:         end,
		IntervalMinutes: req.IntervalMinutes,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Slot generation rejected.")
			return
		}
		httperr.Internal(c, "slot_generation_failed", "Failed to generate slots.")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// CREATE
// ======================================================

func (h *ScheduleFrameHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateFrameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	dates := make([]time.Time, 0, len(req.Dates))
	for _, raw := range req.Dates {
		d, err := parseDateTime(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Dates must be RFC3339 timestamps.")
			return
		}
		dates = append(dates, d)
	}

	frame, err := h.createFrameUC.Execute(c.Request.Context(), ucSchedule.CreateFrameInput{
		Title:   req.Title,
		Dates:   dates,
		ActorID: actorID,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Frame creation rejected.")
			return
		}
		httperr.Internal(c, "failed_to_create_frame", "Failed to create schedule frame.")
		return
	}

	c.JSON(http.StatusCreated, frame)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ScheduleFrameHandler) List(c *gin.Context) {
	frames, err := h.listFramesUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_frames", "Failed to list schedule frames.")
		return
	}

	httpresp.List(c, frames)
}

func (h *ScheduleFrameHandler) Get(c *gin.Context) {
	detail, err := h.getFrameUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		if httperr.IsBusiness(err, "frame_not_found") {
			httperr.NotFound(c, "frame_not_found", "Schedule frame not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_frame", "Failed to load schedule frame.")
		return
	}

	httpresp.OK(c, detail)
}

// ======================================================
// DELETE (admin)
// ======================================================

func (h *ScheduleFrameHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)

	err := h.deleteFrameUC.Execute(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		if httperr.IsBusiness(err, "frame_not_found") {
			httperr.NotFound(c, "frame_not_found", "Schedule frame not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_frame", "Failed to delete schedule frame.")
		return
	}

	c.Status(http.StatusNoContent)
}
