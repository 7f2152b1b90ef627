package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/slotframe-app/slotframe/internal/httperr"
	"github.com/slotframe-app/slotframe/internal/httpresp"
	"github.com/slotframe-app/slotframe/internal/middleware"
	ucSchedule "github.com/slotframe-app/slotframe/internal/usecase/schedule"
)

type AppointmentHandler struct {
	listAppointmentsUC *ucSchedule.ListAppointments
}

func NewAppointmentHandler(
	listAppointmentsUC *ucSchedule.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		listAppointmentsUC: listAppointmentsUC,
	}
}

// List partitions appointments by scope=upcoming|past. Non-admins always
// get their own; admins may pass user_id (or omit it for everyone).
func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	isAdmin := c.GetBool(middleware.ContextIsAdmin)

	scope := c.DefaultQuery("scope", ucSchedule.ScopeUpcoming)

	filterID := userID
	if isAdmin {
		filterID = c.Query("user_id")
	}

	aps, err := h.listAppointmentsUC.Execute(c.Request.Context(), filterID, scope)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_scope") {
			httperr.BadRequest(c, "invalid_scope", "Scope must be upcoming or past.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	httpresp.List(c, aps)
}
