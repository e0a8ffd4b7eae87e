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

type CompleteAppointment struct {
	repo    domain.Repository
	locker  lock.Locker
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
}

func NewCompleteAppointment(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:    repo,
		locker:  locker,
		audit:   audit,
		metrics: metrics,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	actor identity.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := transition(ctx, uc.repo, uc.locker, appointmentID,
		func(ap *models.Appointment, now time.Time) error {
			if actor.ID != ap.ProviderID && !actor.IsAdmin() {
				return httperr.ErrUnauthorized("not_allowed_to_complete")
			}
			return domain.Complete(ap, now)
		},
	)
	if err != nil {
		return nil, err
	}

	dispatchTransition(uc.audit, uc.metrics, actor, audit.ActionAppointmentDone, ap)
	return ap, nil
}
