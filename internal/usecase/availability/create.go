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

// ======================================================
// INPUT
// ======================================================

type BlockInput struct {
	ProviderID uint
	Weekday    clock.Weekday
	Start      clock.TimeOfDay
	End        clock.TimeOfDay
}

// ======================================================
// USE CASE
// ======================================================

type CreateAvailability struct {
	repo    domain.Repository
	users   identity.Directory
	locker  lock.Locker
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
}

func NewCreateAvailability(
	repo domain.Repository,
	users identity.Directory,
	locker lock.Locker,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
) *CreateAvailability {
	return &CreateAvailability{
		repo:    repo,
		users:   users,
		locker:  locker,
		audit:   audit,
		metrics: metrics,
	}
}

func (uc *CreateAvailability) Execute(
	ctx context.Context,
	actor identity.Actor,
	in BlockInput,
) (block *models.AvailabilityBlock, err error) {

	defer func() { uc.metrics.IncAvailability("create", metrics.Result(err)) }()

	if err := domain.ValidateBlock(in.Weekday, in.Start, in.End); err != nil {
		return nil, err
	}

	if err := authorize(actor, in.ProviderID); err != nil {
		return nil, err
	}

	if _, err := identity.RequireRole(ctx, uc.users, in.ProviderID, identity.RoleProvider); err != nil {
		return nil, err
	}

	unlock, err := uc.locker.Lock(ctx, lock.ProviderKey(in.ProviderID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := uc.repo.ListBlocksForWeekday(ctx, in.ProviderID, in.Weekday)
	if err != nil {
		return nil, err
	}

	if err := domain.AssertNoOverlap(existing, 0, in.Start, in.End); err != nil {
		return nil, err
	}

	b := &models.AvailabilityBlock{
		ProviderID: in.ProviderID,
		Weekday:    in.Weekday,
		StartTime:  in.Start,
		EndTime:    in.End,
	}

	if err := uc.repo.CreateBlock(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.ID(actor.ID),
		Action:   audit.ActionAvailabilityCreated,
		Entity:   "availability",
		EntityID: audit.ID(b.ID),
		Metadata: b,
	})

	return b, nil
}
