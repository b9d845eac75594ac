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

const instantLayout = "2006-01-02T15:04:05"

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID    uint
	ServiceID uint

	StartAt string // 2006-01-02T15:04:05, fuso fixo
	EndAt   string

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo         domain.Repository
	availability *GetAvailability
	audit        *audit.Dispatcher
	now          func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:         repo,
		availability: NewGetAvailability(repo),
		audit:        audit,
		now:          timezone.Now,
	}
}

// Execute nunca confia na disponibilidade que o cliente viu: recalcula o
// pipeline inteiro e exige um slot livre com início e fim idênticos ao
// pedido antes de gravar.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	if in.StartAt == "" || in.EndAt == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	loc := timezone.Location()

	start, err := time.ParseInLocation(instantLayout, in.StartAt, loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	end, err := time.ParseInLocation(instantLayout, in.EndAt, loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	now := uc.now()
	if start.Before(now) {
		return nil, httperr.ErrBusiness(httperr.CodePastBooking)
	}

	availability, err := uc.availability.Execute(ctx, domain.AvailabilityInput{
		Date:      start.Format(dateLayout),
		ServiceID: in.ServiceID,
	})
	if err != nil {
		return nil, err
	}

	// match exato, não tolerante a sobreposição: impede reservar
	// uma janela parcial.
	matched := false
	for _, slot := range availability.Slots {
		if slot.Start.Equal(start) && slot.End.Equal(end) {
			matched = true
			break
		}
	}
	if !matched {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	ap := &models.Appointment{
		UserID:           in.UserID,
		ServiceID:        in.ServiceID,
		StartAt:          start,
		EndAt:            end,
		Status:           string(domain.InitialStatus()),
		PaymentConfirmed: false,
		ControlCode:      domain.NewControlCode(now),
		Notes:            in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
