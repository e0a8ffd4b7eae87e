package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	"github.com/BruksfildServices01/agenda-scheduler/internal/config"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/dto"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/middleware"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

type AuthHandler struct {
	users  identity.Users
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(
	users identity.Users,
	cfg *config.Config,
	audit *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{users: users, config: cfg, audit: audit}
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "invalid_request",
			"message":    err.Error(),
		})
		return
	}

	role := identity.RoleClient
	if req.Role != "" {
		r, ok := identity.ParseRole(req.Role)
		// ADMIN só pelo comando migrate
		if !ok || r == identity.RoleAdmin {
			httperr.BadRequest(c, "invalid_role", "Perfil inválido.")
			return
		}
		role = r
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         string(role),
	}

	if err := h.users.CreateUser(c.Request.Context(), user); err != nil {
		httperr.Respond(c, err)
		return
	}

	token, err := middleware.GenerateToken(h.config, user.ID, role)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  audit.ID(user.ID),
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: audit.ID(user.ID),
		Metadata: map[string]any{"role": user.Role},
	})

	c.JSON(http.StatusCreated, dto.AuthResponse{
		User:  dto.NewUser(user),
		Token: token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "invalid_request",
			"message":    err.Error(),
		})
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if httperr.Is(err, httperr.KindNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}

	role, ok := identity.ParseRole(user.Role)
	if !ok {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}

	token, err := middleware.GenerateToken(h.config, user.ID, role)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		User:  dto.NewUser(user),
		Token: token,
	})
}
