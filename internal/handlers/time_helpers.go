package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/middleware"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
	"github.com/BruksfildServices01/agenda-scheduler/internal/timezone"
)

const dateTimeLayout = "2006-01-02T15:04"

// --------------------------------------------------
// Datas no fuso da aplicação
// --------------------------------------------------

func parseDate(s string) (time.Time, error) {
	return timezone.ParseDate(s)
}

// aceita YYYY-MM-DDTHH:MM ou RFC3339; segundos são descartados porque a
// grade de horários é em minutos.
func parseDateTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateTimeLayout, s, timezone.Default()); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(timezone.Default()).Truncate(time.Minute), nil
}

// --------------------------------------------------
// Parâmetros
// --------------------------------------------------

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_"+name, "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// optionalQueryID: ausente devolve nil, inválido responde 400.
func optionalQueryID(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_"+name, "Identificador inválido.")
		return nil, false
	}
	v := uint(id)
	return &v, true
}

// pageParams lê ?page (0-indexado) e ?size. Inválido responde 400.
func pageParams(c *gin.Context) (pagination.Page, bool) {
	number, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		httperr.BadRequest(c, "invalid_page", "Página inválida.")
		return pagination.Page{}, false
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(pagination.DefaultSize)))
	if err != nil {
		httperr.BadRequest(c, "invalid_page_size", "Tamanho de página inválido.")
		return pagination.Page{}, false
	}

	p, err := pagination.New(number, size)
	if err != nil {
		httperr.Respond(c, err)
		return pagination.Page{}, false
	}
	return p, true
}

func mustActor(c *gin.Context) (identity.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Não autenticado.")
		return identity.Actor{}, false
	}
	return actor, true
}
