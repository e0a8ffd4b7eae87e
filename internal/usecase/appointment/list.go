package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

// limites usados quando a consulta não informa período
var (
	minTime = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	maxTime = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
)

// DateRange é um intervalo de datas de calendário, inclusivo nas duas
// pontas. Nil em qualquer ponta significa aberto.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r DateRange) bounds() (time.Time, time.Time, error) {
	from, to := minTime, maxTime
	if r.From != nil {
		from = clock.StartOfDay(*r.From)
	}
	if r.To != nil {
		to = clock.StartOfDay(*r.To).AddDate(0, 0, 1)
	}
	if !from.Before(to) {
		return from, to, httperr.ErrValidation("invalid_date_range")
	}
	return from, to, nil
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// ByClient lista os agendamentos do cliente. Só o próprio cliente ou um
// admin.
func (uc *ListAppointments) ByClient(
	ctx context.Context,
	actor identity.Actor,
	clientID uint,
	page pagination.Page,
) ([]models.Appointment, int64, error) {

	if actor.ID != clientID && !actor.IsAdmin() {
		return nil, 0, httperr.ErrUnauthorized("not_allowed_to_list")
	}

	return uc.repo.FindByClient(ctx, clientID, page)
}

// ByProvider lista a agenda do profissional no período, de qualquer status.
func (uc *ListAppointments) ByProvider(
	ctx context.Context,
	actor identity.Actor,
	providerID uint,
	period DateRange,
	page pagination.Page,
) ([]models.Appointment, int64, error) {

	if actor.ID != providerID && !actor.IsAdmin() {
		return nil, 0, httperr.ErrUnauthorized("not_allowed_to_list")
	}

	from, to, err := period.bounds()
	if err != nil {
		return nil, 0, err
	}

	return uc.repo.PageByProvider(ctx, providerID, from, to, page)
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	actor identity.Actor,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.ID != ap.ClientID && actor.ID != ap.ProviderID && !actor.IsAdmin() {
		return nil, httperr.ErrUnauthorized("not_allowed_to_view")
	}

	return ap, nil
}
