package availability

import (
	"time"

	"github.com/BruksfildServices01/agenda-scheduler/internal/clock"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/interval"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

// ValidateBlock checks the shape of a block before it is compared with the
// provider's other blocks.
func ValidateBlock(weekday clock.Weekday, start, end clock.TimeOfDay) error {
	if !weekday.Valid() {
		return httperr.ErrValidation("invalid_weekday")
	}
	if !start.Valid() || !end.Valid() {
		return httperr.ErrValidation("invalid_time")
	}
	if !start.Before(end) {
		return httperr.ErrValidation("start_must_be_before_end")
	}
	return nil
}

// AssertNoOverlap fails with an overlap error when [start, end) intersects
// any block in existing other than the one identified by excludeID.
// existing must already be restricted to one provider and weekday.
func AssertNoOverlap(
	existing []models.AvailabilityBlock,
	excludeID uint,
	start clock.TimeOfDay,
	end clock.TimeOfDay,
) error {

	for _, b := range existing {
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if interval.Overlaps(start, end, b.StartTime, b.EndTime) {
			return httperr.ErrOverlap("availability_overlap")
		}
	}
	return nil
}

// Covers reports whether some block fully contains [start, end). Blocks are
// anchored on the calendar date of start.
func Covers(blocks []models.AvailabilityBlock, start, end time.Time) bool {
	for _, b := range blocks {
		if interval.Contains(b.StartTime.On(start), b.EndTime.On(start), start, end) {
			return true
		}
	}
	return false
}
