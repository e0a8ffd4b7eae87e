package availability

import (
	"context"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	"github.com/BruksfildServices01/agenda-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/agenda-scheduler/internal/metrics"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

type UpdateAvailability struct {
	repo    domain.Repository
	locker  lock.Locker
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
}

func NewUpdateAvailability(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
) *UpdateAvailability {
	return &UpdateAvailability{
		repo:    repo,
		locker:  locker,
		audit:   audit,
		metrics: metrics,
	}
}

// Execute substitui dia e horário do bloco. O profissional dono não muda.
func (uc *UpdateAvailability) Execute(
	ctx context.Context,
	actor identity.Actor,
	id uint,
	weekday clock.Weekday,
	start clock.TimeOfDay,
	end clock.TimeOfDay,
) (block *models.AvailabilityBlock, err error) {

	defer func() { uc.metrics.IncAvailability("update", metrics.Result(err)) }()

	if err := domain.ValidateBlock(weekday, start, end); err != nil {
		return nil, err
	}

	current, err := uc.repo.GetBlock(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authorize(actor, current.ProviderID); err != nil {
		return nil, err
	}

	unlock, err := uc.locker.Lock(ctx, lock.ProviderKey(current.ProviderID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	// pode ter sido apagado enquanto esperávamos o lock
	current, err = uc.repo.GetBlock(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListBlocksForWeekday(ctx, current.ProviderID, weekday)
	if err != nil {
		return nil, err
	}

	if err := domain.AssertNoOverlap(existing, id, start, end); err != nil {
		return nil, err
	}

	before := *current
	current.Weekday = weekday
	current.StartTime = start
	current.EndTime = end

	if err := uc.repo.UpdateBlock(ctx, current); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.ID(actor.ID),
		Action:   audit.ActionAvailabilityUpdated,
		Entity:   "availability",
		EntityID: audit.ID(id),
		Metadata: map[string]any{
			"before": before,
			"after":  current,
		},
	})

	return current, nil
}
