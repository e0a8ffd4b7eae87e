package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/agenda-scheduler/internal/metrics"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

type CancelAppointment struct {
	repo    domain.Repository
	locker  lock.Locker
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
}

func NewCancelAppointment(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
) *CancelAppointment {
	return &CancelAppointment{
		repo:    repo,
		locker:  locker,
		audit:   audit,
		metrics: metrics,
	}
}

// Execute cancela em nome do ator. O cliente gera CANCELED_BY_CLIENT; o
// profissional ou um admin geram CANCELED_BY_PROVIDER.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor identity.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := transition(ctx, uc.repo, uc.locker, appointmentID,
		func(ap *models.Appointment, now time.Time) error {
			to, err := cancelStatusFor(actor, ap)
			if err != nil {
				return err
			}
			return domain.Cancel(ap, to, now)
		},
	)
	if err != nil {
		return nil, err
	}

	dispatchTransition(uc.audit, uc.metrics, actor, audit.ActionAppointmentCanceled, ap)
	return ap, nil
}

func cancelStatusFor(actor identity.Actor, ap *models.Appointment) (domain.Status, error) {
	switch {
	case actor.ID == ap.ClientID:
		return domain.StatusCanceledByClient, nil
	case actor.ID == ap.ProviderID, actor.IsAdmin():
		return domain.StatusCanceledByProvider, nil
	}
	return "", httperr.ErrUnauthorized("not_allowed_to_cancel")
}
