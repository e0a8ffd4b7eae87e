package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-scheduler/internal/dto"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httpresp"
	catalogUC "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	services *catalogUC.ManageServices
}

func NewServiceHandler(services *catalogUC.ManageServices) *ServiceHandler {
	return &ServiceHandler{services: services}
}

func (h *ServiceHandler) List(c *gin.Context) {
	providerID, ok := optionalQueryID(c, "provider_id")
	if !ok {
		return
	}

	page, ok := pageParams(c)
	if !ok {
		return
	}

	list, total, err := h.services.List(c.Request.Context(), providerID, page)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, list, total, page)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	s, err := h.services.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.ProviderID == 0 {
		req.ProviderID = actor.ID
	}

	s, err := h.services.Create(c.Request.Context(), actor, catalogUC.ServiceInput{
		ProviderID:      req.ProviderID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Active:          req.Active,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, s)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	s, err := h.services.Update(c.Request.Context(), actor, id, catalogUC.ServiceInput{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Active:          req.Active,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}
