package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/agenda-scheduler/internal/metrics"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/timezone"
)

// transition carrega o agendamento, decide o destino e grava sob o lock do
// profissional. decide recebe o estado relido depois do lock.
func transition(
	ctx context.Context,
	repo domain.Repository,
	locker lock.Locker,
	id uint,
	decide func(ap *models.Appointment, now time.Time) error,
) (*models.Appointment, error) {

	ap, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock, err := locker.Lock(ctx, lock.ProviderKey(ap.ProviderID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	ap, err = repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := decide(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := repo.Save(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}

func dispatchTransition(
	d *audit.Dispatcher,
	m *metrics.Metrics,
	actor identity.Actor,
	action string,
	ap *models.Appointment,
) {
	m.IncTransition(ap.Status)

	d.Dispatch(audit.Event{
		ActorID:  audit.ID(actor.ID),
		Action:   action,
		Entity:   "appointment",
		EntityID: audit.ID(ap.ID),
		Metadata: map[string]any{"status": ap.Status},
	})
}
