package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/dto"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httpresp"
	appointmentUC "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/appointment"
	availabilityUC "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	create *availabilityUC.CreateAvailability
	update *availabilityUC.UpdateAvailability
	remove *availabilityUC.DeleteAvailability
	list   *availabilityUC.ListAvailability
	get    *availabilityUC.GetAvailability
	slots  *appointmentUC.GenerateSlots
}

func NewAvailabilityHandler(
	create *availabilityUC.CreateAvailability,
	update *availabilityUC.UpdateAvailability,
	remove *availabilityUC.DeleteAvailability,
	list *availabilityUC.ListAvailability,
	get *availabilityUC.GetAvailability,
	slots *appointmentUC.GenerateSlots,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		create: create,
		update: update,
		remove: remove,
		list:   list,
		get:    get,
		slots:  slots,
	}
}

// ======================================================
// HELPERS
// ======================================================

type parsedBlock struct {
	weekday clock.Weekday
	start   clock.TimeOfDay
	end     clock.TimeOfDay
}

func parseBlock(c *gin.Context, req dto.AvailabilityRequest) (parsedBlock, bool) {
	weekday, err := clock.ParseWeekday(req.Weekday)
	if err != nil {
		httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
		return parsedBlock{}, false
	}

	start, err1 := clock.ParseTimeOfDay(req.StartTime)
	end, err2 := clock.ParseTimeOfDay(req.EndTime)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_time", "Horário inválido. Use HH:MM.")
		return parsedBlock{}, false
	}

	return parsedBlock{weekday: weekday, start: start, end: end}, true
}

// ======================================================
// CRUD
// ======================================================

func (h *AvailabilityHandler) Create(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, ok := parseBlock(c, req)
	if !ok {
		return
	}

	providerID := req.ProviderID
	if providerID == 0 && actor.Role == identity.RoleProvider {
		providerID = actor.ID
	}

	block, err := h.create.Execute(c.Request.Context(), actor, availabilityUC.BlockInput{
		ProviderID: providerID,
		Weekday:    b.weekday,
		Start:      b.start,
		End:        b.end,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, block)
}

func (h *AvailabilityHandler) Update(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, ok := parseBlock(c, req)
	if !ok {
		return
	}

	block, err := h.update.Execute(c.Request.Context(), actor, id, b.weekday, b.start, b.end)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, block)
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), actor, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *AvailabilityHandler) List(c *gin.Context) {
	providerID, ok := optionalQueryID(c, "provider_id")
	if !ok {
		return
	}

	page, ok := pageParams(c)
	if !ok {
		return
	}

	blocks, total, err := h.list.Execute(c.Request.Context(), providerID, page)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, blocks, total, page)
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	block, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, block)
}

// ======================================================
// SLOTS
// ======================================================

func (h *AvailabilityHandler) Slots(c *gin.Context) {
	providerID, ok := optionalQueryID(c, "provider_id")
	if !ok {
		return
	}
	serviceID, ok := optionalQueryID(c, "service_id")
	if !ok {
		return
	}
	if providerID == nil || serviceID == nil {
		httperr.BadRequest(c, "missing_parameters", "provider_id, service_id e date são obrigatórios.")
		return
	}

	dateStr := c.Query("date")
	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use YYYY-MM-DD.")
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), domain.AvailabilityInput{
		ProviderID: *providerID,
		ServiceID:  *serviceID,
		Date:       date,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	resp := dto.SlotsResponse{
		ProviderID: *providerID,
		ServiceID:  *serviceID,
		Date:       dateStr,
		Slots:      make([]dto.SlotDTO, 0, len(slots)),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, dto.NewSlot(s.Start, s.End))
	}

	httpresp.OK(c, resp)
}
