package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/BruksfildServices01/agenda-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

type AvailabilityRepository struct {
	mu   sync.RWMutex
	seq  sequence
	rows map[uint]models.AvailabilityBlock
}

func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{rows: map[uint]models.AvailabilityBlock{}}
}

func (r *AvailabilityRepository) CreateBlock(
	_ context.Context,
	b *models.AvailabilityBlock,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	ts := now()
	b.ID = r.seq.next()
	b.CreatedAt = ts
	b.UpdatedAt = ts

	r.rows[b.ID] = *b
	return nil
}

func (r *AvailabilityRepository) UpdateBlock(
	_ context.Context,
	b *models.AvailabilityBlock,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.rows[b.ID]
	if !ok {
		return httperr.ErrNotFound("availability_not_found")
	}

	cur.Weekday = b.Weekday
	cur.StartTime = b.StartTime
	cur.EndTime = b.EndTime
	cur.UpdatedAt = now()

	r.rows[b.ID] = cur
	*b = cur
	return nil
}

func (r *AvailabilityRepository) DeleteBlock(
	_ context.Context,
	id uint,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return httperr.ErrNotFound("availability_not_found")
	}
	delete(r.rows, id)
	return nil
}

func (r *AvailabilityRepository) GetBlock(
	_ context.Context,
	id uint,
) (*models.AvailabilityBlock, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.rows[id]
	if !ok {
		return nil, httperr.ErrNotFound("availability_not_found")
	}
	return &b, nil
}

func (r *AvailabilityRepository) ListBlocks(
	_ context.Context,
	providerID *uint,
	page pagination.Page,
) ([]models.AvailabilityBlock, int64, error) {

	out := r.filter(func(b models.AvailabilityBlock) bool {
		return providerID == nil || b.ProviderID == *providerID
	})

	sort.Slice(out, func(i, j int) bool {
		if out[i].ProviderID != out[j].ProviderID {
			return out[i].ProviderID < out[j].ProviderID
		}
		return out[i].ID < out[j].ID
	})
	return pagination.Slice(out, page), int64(len(out)), nil
}

func (r *AvailabilityRepository) ListBlocksForWeekday(
	_ context.Context,
	providerID uint,
	weekday clock.Weekday,
) ([]models.AvailabilityBlock, error) {

	out := r.filter(func(b models.AvailabilityBlock) bool {
		return b.ProviderID == providerID && b.Weekday == weekday
	})

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *AvailabilityRepository) filter(keep func(models.AvailabilityBlock) bool) []models.AvailabilityBlock {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.AvailabilityBlock{}
	for _, b := range r.rows {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

var _ domain.Repository = (*AvailabilityRepository)(nil)
