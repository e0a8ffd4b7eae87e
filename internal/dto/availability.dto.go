package dto

import "time"

type AvailabilityRequest struct {
	// obrigatório para admin; profissional usa o próprio id
	ProviderID uint   `json:"provider_id"`
	Weekday    string `json:"weekday" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"` // HH:MM
	EndTime    string `json:"end_time" binding:"required"`
}

type SlotDTO struct {
	Start string `json:"start"` // HH:MM
	End   string `json:"end"`
}

type SlotsResponse struct {
	ProviderID uint      `json:"provider_id"`
	ServiceID  uint      `json:"service_id"`
	Date       string    `json:"date"`
	Slots      []SlotDTO `json:"slots"`
}

func NewSlot(start, end time.Time) SlotDTO {
	return SlotDTO{
		Start: start.Format("15:04"),
		End:   end.Format("15:04"),
	}
}
