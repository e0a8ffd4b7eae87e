package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/dto"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httpresp"
	identityUC "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/identity"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	users *identityUC.ManageUsers
}

func NewUserHandler(users *identityUC.ManageUsers) *UserHandler {
	return &UserHandler{users: users}
}

// List aceita ?role=CLIENT|PROVIDER|ADMIN além de page/size.
func (h *UserHandler) List(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var role *identity.Role
	if raw := c.Query("role"); raw != "" {
		r, ok := identity.ParseRole(raw)
		if !ok {
			httperr.BadRequest(c, "invalid_role", "Perfil inválido.")
			return
		}
		role = &r
	}

	page, ok := pageParams(c)
	if !ok {
		return
	}

	users, total, err := h.users.List(c.Request.Context(), actor, role, page)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, dto.NewUserList(users), total, page)
}

func (h *UserHandler) Get(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewUser(user))
}

func (h *UserHandler) Update(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user, err := h.users.Update(c.Request.Context(), actor, id, identityUC.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewUser(user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}
