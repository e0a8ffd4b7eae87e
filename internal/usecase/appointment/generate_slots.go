package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/metrics"
)

type GenerateSlots struct {
	repo    domain.Repository
	blocks  availability.Repository
	catalog catalog.Catalog
	users   identity.Directory
	metrics *metrics.Metrics
}

func NewGenerateSlots(
	repo domain.Repository,
	blocks availability.Repository,
	catalog catalog.Catalog,
	users identity.Directory,
	metrics *metrics.Metrics,
) *GenerateSlots {
	return &GenerateSlots{
		repo:    repo,
		blocks:  blocks,
		catalog: catalog,
		users:   users,
		metrics: metrics,
	}
}

// Execute devolve os horários livres do dia, ordenados pelo início. Só
// leitura; não pega o lock do profissional.
func (uc *GenerateSlots) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	if _, err := identity.RequireRole(ctx, uc.users, in.ProviderID, identity.RoleProvider); err != nil {
		return nil, err
	}

	svc, err := uc.catalog.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc.ProviderID != in.ProviderID {
		return nil, httperr.ErrNotFound("service_not_found")
	}
	if svc.DurationMinutes <= 0 {
		return nil, httperr.ErrValidation("invalid_service_duration")
	}

	// serviço inativo não aceita agendamento, então não há horário a oferecer
	if !svc.Active {
		uc.metrics.ObserveSlots(0)
		return []domain.TimeSlot{}, nil
	}

	day := clock.StartOfDay(in.Date)

	blocks, err := uc.blocks.ListBlocksForWeekday(ctx, in.ProviderID, clock.WeekdayOf(day))
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.FindByProvider(ctx, in.ProviderID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	slots := domain.BuildSlots(
		day,
		blocks,
		time.Duration(svc.DurationMinutes)*time.Minute,
		domain.Scheduled(appointments),
	)

	uc.metrics.ObserveSlots(len(slots))
	return slots, nil
}
