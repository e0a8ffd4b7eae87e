package availability

import (
	"context"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/agenda-scheduler/internal/metrics"
)

type DeleteAvailability struct {
	repo    domain.Repository
	locker  lock.Locker
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
}

func NewDeleteAvailability(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
) *DeleteAvailability {
	return &DeleteAvailability{
		repo:    repo,
		locker:  locker,
		audit:   audit,
		metrics: metrics,
	}
}

// Execute remove o bloco. Agendamentos já feitos dentro dele continuam
// válidos.
func (uc *DeleteAvailability) Execute(
	ctx context.Context,
	actor identity.Actor,
	id uint,
) (err error) {

	defer func() { uc.metrics.IncAvailability("delete", metrics.Result(err)) }()

	current, err := uc.repo.GetBlock(ctx, id)
	if err != nil {
		return err
	}

	if err := authorize(actor, current.ProviderID); err != nil {
		return err
	}

	unlock, err := uc.locker.Lock(ctx, lock.ProviderKey(current.ProviderID))
	if err != nil {
		return err
	}
	defer unlock()

	if err := uc.repo.DeleteBlock(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.ID(actor.ID),
		Action:   audit.ActionAvailabilityDeleted,
		Entity:   "availability",
		EntityID: audit.ID(id),
	})

	return nil
}
