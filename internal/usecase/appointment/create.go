package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	"github.com/BruksfildServices01/agenda-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/agenda-scheduler/internal/metrics"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	// zero = o próprio ator (cliente)
	ClientID   uint
	ProviderID uint
	ServiceID  uint
	Start      time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	blocks  availability.Repository
	catalog catalog.Catalog
	users   identity.Directory
	locker  lock.Locker
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
}

func NewCreateAppointment(
	repo domain.Repository,
	blocks availability.Repository,
	catalog catalog.Catalog,
	users identity.Directory,
	locker lock.Locker,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		blocks:  blocks,
		catalog: catalog,
		users:   users,
		locker:  locker,
		audit:   audit,
		metrics: metrics,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor identity.Actor,
	in CreateAppointmentInput,
) (ap *models.Appointment, err error) {

	defer func() {
		uc.metrics.IncAppointment(metrics.Result(err))

		if httperr.Is(err, httperr.KindOutOfAvailability) || httperr.Is(err, httperr.KindScheduleConflict) {
			uc.audit.Dispatch(audit.Event{
				ActorID:  audit.ID(actor.ID),
				Action:   audit.ActionAppointmentRejected,
				Entity:   "appointment",
				Metadata: map[string]any{
					"reason":      err.Error(),
					"provider_id": in.ProviderID,
					"service_id":  in.ServiceID,
					"start":       in.Start,
				},
			})
		}
	}()

	// --------------------------------------------------
	// 1️⃣ Quem agenda
	// --------------------------------------------------
	clientID, err := bookingClient(actor, in.ClientID)
	if err != nil {
		return nil, err
	}

	if _, err := identity.RequireRole(ctx, uc.users, clientID, identity.RoleClient); err != nil {
		return nil, err
	}
	if _, err := identity.RequireRole(ctx, uc.users, in.ProviderID, identity.RoleProvider); err != nil {
		return nil, err
	}

	if in.Start.IsZero() {
		return nil, httperr.ErrValidation("invalid_start_time")
	}

	// --------------------------------------------------
	// 2️⃣ Serviço (duração + dono)
	// --------------------------------------------------
	svc, err := catalog.ServiceOfProvider(ctx, uc.catalog, in.ServiceID, in.ProviderID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, httperr.ErrValidation("service_inactive")
	}

	start := in.Start
	end := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	// --------------------------------------------------
	// 3️⃣ Disponibilidade do dia da semana
	// --------------------------------------------------
	blocks, err := uc.blocks.ListBlocksForWeekday(ctx, in.ProviderID, clock.WeekdayOf(start))
	if err != nil {
		return nil, err
	}

	if !availability.Covers(blocks, start, end) {
		return nil, httperr.ErrOutOfAvailability("outside_availability")
	}

	// --------------------------------------------------
	// 4️⃣ Conflito (serializado por profissional)
	// --------------------------------------------------
	unlock, err := uc.locker.Lock(ctx, lock.ProviderKey(in.ProviderID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	dayStart := clock.StartOfDay(start)
	sameDay, err := uc.repo.FindByProvider(ctx, in.ProviderID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	if domain.FindConflict(domain.Scheduled(sameDay), start, end) != nil {
		return nil, httperr.ErrScheduleConflict("schedule_conflict")
	}

	// --------------------------------------------------
	// 5️⃣ Persistência (status centralizado)
	// --------------------------------------------------
	ap = &models.Appointment{
		ClientID:   clientID,
		ProviderID: in.ProviderID,
		ServiceID:  svc.ID,
		StartTime:  start,
		EndTime:    end,
		Status:     string(domain.InitialStatus()),
	}

	if err := uc.repo.Save(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.ID(actor.ID),
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: audit.ID(ap.ID),
	})

	return ap, nil
}

// bookingClient: cliente agenda para si; admin agenda para qualquer cliente.
func bookingClient(actor identity.Actor, requested uint) (uint, error) {
	switch actor.Role {
	case identity.RoleClient:
		if requested != 0 && requested != actor.ID {
			return 0, httperr.ErrUnauthorized("cannot_book_for_another_client")
		}
		return actor.ID, nil

	case identity.RoleAdmin:
		if requested == 0 {
			return 0, httperr.ErrValidation("client_id_required")
		}
		return requested, nil
	}

	return 0, httperr.ErrUnauthorized("only_clients_can_book")
}
