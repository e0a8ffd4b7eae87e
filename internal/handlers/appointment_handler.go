package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-scheduler/internal/dto"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/timezone"
	appointmentUC "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create   *appointmentUC.CreateAppointment
	cancel   *appointmentUC.CancelAppointment
	complete *appointmentUC.CompleteAppointment
	list     *appointmentUC.ListAppointments
	get      *appointmentUC.GetAppointment
}

func NewAppointmentHandler(
	create *appointmentUC.CreateAppointment,
	cancel *appointmentUC.CancelAppointment,
	complete *appointmentUC.CompleteAppointment,
	list *appointmentUC.ListAppointments,
	get *appointmentUC.GetAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		cancel:   cancel,
		complete: complete,
		list:     list,
		get:      get,
	}
}

func respondAppointment(c *gin.Context, status int, ap *models.Appointment) {
	c.JSON(status, dto.NewAppointmentDTO(*ap, timezone.Default()))
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseDateTime(req.Start)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), actor, appointmentUC.CreateAppointmentInput{
		ClientID:   req.ClientID,
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
		Start:      start,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	respondAppointment(c, http.StatusCreated, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	respondAppointment(c, http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	respondAppointment(c, http.StatusOK, ap)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	respondAppointment(c, http.StatusOK, ap)
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	clientID, ok := paramID(c, "clientId")
	if !ok {
		return
	}

	page, ok := pageParams(c)
	if !ok {
		return
	}

	aps, total, err := h.list.ByClient(c.Request.Context(), actor, clientID, page)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, dto.NewAppointmentList(aps, timezone.Default()), total, page)
}

func (h *AppointmentHandler) ListByProvider(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	providerID, ok := paramID(c, "providerId")
	if !ok {
		return
	}

	var period appointmentUC.DateRange
	for _, q := range []struct {
		name string
		dst  **time.Time
	}{
		{"start_date", &period.From},
		{"end_date", &period.To},
	} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		d, err := parseDate(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_"+q.name, "Data inválida. Use YYYY-MM-DD.")
			return
		}
		*q.dst = &d
	}

	page, ok := pageParams(c)
	if !ok {
		return
	}

	aps, total, err := h.list.ByProvider(c.Request.Context(), actor, providerID, period, page)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, dto.NewAppointmentList(aps, timezone.Default()), total, page)
}
