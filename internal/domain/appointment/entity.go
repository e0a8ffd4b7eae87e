package appointment

import (
	"time"

	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel moves ap to one of the canceled states. to must be
// StatusCanceledByClient or StatusCanceledByProvider.
func Cancel(ap *models.Appointment, to Status, now time.Time) error {
	if to != StatusCanceledByClient && to != StatusCanceledByProvider {
		return httperr.ErrValidation("invalid_cancel_status")
	}
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	ap.CanceledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
