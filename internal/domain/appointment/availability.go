package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

type AvailabilityInput struct {
	ProviderID uint
	ServiceID  uint
	Date       time.Time
}

type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BuildSlots tiles every block of date with back-to-back candidates of the
// given duration and drops those overlapping a busy appointment. A
// candidate ending exactly at the block end is kept. The result is sorted
// by start.
func BuildSlots(
	date time.Time,
	blocks []models.AvailabilityBlock,
	duration time.Duration,
	busy []models.Appointment,
) []TimeSlot {

	slots := []TimeSlot{}
	if duration <= 0 {
		return slots
	}

	for _, b := range blocks {
		blockStart := b.StartTime.On(date)
		blockEnd := b.EndTime.On(date)

		for cur := blockStart; !cur.Add(duration).After(blockEnd); cur = cur.Add(duration) {
			slotStart := cur
			slotEnd := cur.Add(duration)

			if FindConflict(busy, slotStart, slotEnd) != nil {
				continue
			}

			slots = append(slots, TimeSlot{Start: slotStart, End: slotEnd})
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	return slots
}
