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

// UpdateStatus é a transição de status feita pelo admin
// (confirmar, concluir, cancelar).
type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
	newStatus string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if err := domain.Transition(ap, domain.Status(newStatus), uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": newStatus},
	})

	return ap, nil
}

// ConfirmPayment marca o pagamento como recebido. Agendamento cancelado
// não aceita confirmação.
type ConfirmPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmPayment {
	return &ConfirmPayment{repo: repo, audit: audit}
}

func (uc *ConfirmPayment) Execute(
	ctx context.Context,
	actorID *uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if ap.Status == string(domain.StatusCanceled) {
		return nil, httperr.ErrBusiness(httperr.CodeAlreadyCanceled)
	}

	if ap.PaymentConfirmed {
		return ap, nil
	}

	ap.PaymentConfirmed = true
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "payment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
