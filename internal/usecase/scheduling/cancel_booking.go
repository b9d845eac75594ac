package scheduling

import (
	"context"
	"time"

	"github.com/donbarbero/booking-api/internal/audit"
	domain "github.com/donbarbero/booking-api/internal/domain/scheduling"
	"github.com/donbarbero/booking-api/internal/httperr"
	"github.com/donbarbero/booking-api/internal/models"
	"github.com/donbarbero/booking-api/internal/timezone"
)

type CancelBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notice time.Duration
	now    func() time.Time
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notice time.Duration,
) *CancelBooking {
	return &CancelBooking{
		repo:   repo,
		audit:  audit,
		notice: notice,
		now:    timezone.Now,
	}
}

// Execute cancela um agendamento do próprio cliente, respeitando a
// antecedência mínima configurada.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	appointmentID uint,
	userID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if ap.UserID != userID {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	now := uc.now()
	if ap.StartAt.Sub(now) < uc.notice {
		return nil, httperr.ErrBusiness(httperr.CodeTooLate)
	}

	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
