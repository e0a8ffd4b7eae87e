package dto

import (
	"time"

	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

type CreateAppointmentRequest struct {
	// só admin informa; cliente agenda para si
	ClientID   uint   `json:"client_id"`
	ProviderID uint   `json:"provider_id" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	Start      string `json:"start" binding:"required"` // YYYY-MM-DDTHH:MM
}

type AppointmentDTO struct {
	ID          uint       `json:"id"`
	ClientID    uint       `json:"client_id"`
	ProviderID  uint       `json:"provider_id"`
	ServiceID   uint       `json:"service_id"`
	Date        string     `json:"date"`
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	Status      string     `json:"status"`
	CanceledAt  *time.Time `json:"canceled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewAppointmentDTO formata horários no fuso loc.
func NewAppointmentDTO(ap models.Appointment, loc *time.Location) AppointmentDTO {
	start := ap.StartTime.In(loc)
	end := ap.EndTime.In(loc)

	return AppointmentDTO{
		ID:          ap.ID,
		ClientID:    ap.ClientID,
		ProviderID:  ap.ProviderID,
		ServiceID:   ap.ServiceID,
		Date:        start.Format("2006-01-02"),
		StartTime:   start.Format("15:04"),
		EndTime:     end.Format("15:04"),
		Start:       start,
		End:         end,
		Status:      ap.Status,
		CanceledAt:  ap.CanceledAt,
		CompletedAt: ap.CompletedAt,
	}
}

func NewAppointmentList(aps []models.Appointment, loc *time.Location) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, NewAppointmentDTO(ap, loc))
	}
	return out
}
