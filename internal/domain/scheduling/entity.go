package scheduling

import (
	"time"

	"github.com/donbarbero/booking-api/internal/httperr"
	"github.com/donbarbero/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCanceled)
	ap.CancelledAt = &now
	return nil
}

// Transition aplica uma mudança de status feita pelo admin.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if !to.Valid() {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	from := Status(ap.Status)
	if from == StatusCanceled && to == StatusCanceled {
		return httperr.ErrBusiness(httperr.CodeAlreadyCanceled)
	}
	if !CanTransition(from, to) {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	ap.Status = string(to)
	if to == StatusCanceled {
		ap.CancelledAt = &now
	}
	return nil
}
