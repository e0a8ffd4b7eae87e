package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/interval"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

type AppointmentRepository struct {
	mu   sync.RWMutex
	seq  sequence
	rows map[uint]models.Appointment
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{rows: map[uint]models.Appointment{}}
}

// Save rejeita sobreposição de SCHEDULED do mesmo profissional, como a
// constraint de exclusão do postgres.
func (r *AppointmentRepository) Save(
	_ context.Context,
	ap *models.Appointment,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if ap.ID != 0 {
		if _, ok := r.rows[ap.ID]; !ok {
			return httperr.ErrNotFound("appointment_not_found")
		}
	}

	if domain.Status(ap.Status) == domain.StatusScheduled {
		for id, other := range r.rows {
			if id == ap.ID ||
				other.ProviderID != ap.ProviderID ||
				domain.Status(other.Status) != domain.StatusScheduled {
				continue
			}
			if interval.Overlaps(ap.StartTime, ap.EndTime, other.StartTime, other.EndTime) {
				return httperr.ErrScheduleConflict("schedule_conflict")
			}
		}
	}

	ts := now()
	if ap.ID == 0 {
		ap.ID = r.seq.next()
		ap.CreatedAt = ts
	}
	ap.UpdatedAt = ts

	r.rows[ap.ID] = *ap
	return nil
}

func (r *AppointmentRepository) FindByID(
	_ context.Context,
	id uint,
) (*models.Appointment, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	ap, ok := r.rows[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}
	return &ap, nil
}

func (r *AppointmentRepository) FindByProvider(
	_ context.Context,
	providerID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	return r.filter(func(ap models.Appointment) bool {
		return ap.ProviderID == providerID &&
			!ap.StartTime.Before(from) &&
			ap.StartTime.Before(to)
	}), nil
}

func (r *AppointmentRepository) PageByProvider(
	ctx context.Context,
	providerID uint,
	from time.Time,
	to time.Time,
	page pagination.Page,
) ([]models.Appointment, int64, error) {

	all, _ := r.FindByProvider(ctx, providerID, from, to)
	return pagination.Slice(all, page), int64(len(all)), nil
}

func (r *AppointmentRepository) FindByClient(
	_ context.Context,
	clientID uint,
	page pagination.Page,
) ([]models.Appointment, int64, error) {

	all := r.filter(func(ap models.Appointment) bool {
		return ap.ClientID == clientID
	})
	return pagination.Slice(all, page), int64(len(all)), nil
}

func (r *AppointmentRepository) filter(keep func(models.Appointment) bool) []models.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range r.rows {
		if keep(ap) {
			out = append(out, ap)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

var _ domain.Repository = (*AppointmentRepository)(nil)
