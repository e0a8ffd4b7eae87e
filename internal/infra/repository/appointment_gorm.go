package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *AppointmentGormRepository) Save(
	ctx context.Context,
	ap *models.Appointment,
) error {

	var err error
	if ap.ID == 0 {
		err = r.db.WithContext(ctx).Create(ap).Error
	} else {
		err = r.db.WithContext(ctx).Save(ap).Error
	}

	// a constraint appointments_no_overlap pegou uma corrida que o lock
	// por profissional não viu (outra instância sem redis, por exemplo)
	if httperr.IsExclusionConflict(err) {
		return httperr.ErrScheduleConflict("schedule_conflict")
	}

	return err
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AppointmentGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, notFound(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) FindByProvider(
	ctx context.Context,
	providerID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"provider_id = ? AND start_time >= ? AND start_time < ?",
			providerID,
			from,
			to,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// PageByProvider é a agenda paginada; FindByProvider serve às regras de
// conflito e slots, que precisam do dia inteiro.
func (r *AppointmentGormRepository) PageByProvider(
	ctx context.Context,
	providerID uint,
	from time.Time,
	to time.Time,
	page pagination.Page,
) ([]models.Appointment, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"provider_id = ? AND start_time >= ? AND start_time < ?",
			providerID,
			from,
			to,
		)

	var apps []models.Appointment
	total, err := paginate(q, page, "start_time ASC, id ASC", &apps)
	return apps, total, err
}

func (r *AppointmentGormRepository) FindByClient(
	ctx context.Context,
	clientID uint,
	page pagination.Page,
) ([]models.Appointment, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("client_id = ?", clientID)

	var apps []models.Appointment
	total, err := paginate(q, page, "start_time ASC, id ASC", &apps)
	return apps, total, err
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
