package dto

type ServiceRequest struct {
	ProviderID      uint   `json:"provider_id"`
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	Active          *bool  `json:"active"`
}
