package appointment

import (
	"time"

	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/interval"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

// Scheduled keeps only appointments that still hold their interval.
// Canceled and completed ones never block a slot.
func Scheduled(aps []models.Appointment) []models.Appointment {
	out := make([]models.Appointment, 0, len(aps))
	for _, ap := range aps {
		if Status(ap.Status) == StatusScheduled {
			out = append(out, ap)
		}
	}
	return out
}

// FindConflict returns the first appointment overlapping [start, end), or
// nil.
func FindConflict(aps []models.Appointment, start, end time.Time) *models.Appointment {
	for i := range aps {
		if interval.Overlaps(start, end, aps[i].StartTime, aps[i].EndTime) {
			return &aps[i]
		}
	}
	return nil
}
