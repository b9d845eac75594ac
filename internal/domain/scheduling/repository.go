package scheduling

import (
	"context"
	"time"

	"github.com/donbarbero/booking-api/internal/models"
)

// Repository é a fronteira do núcleo de agendamento com o armazenamento.
// O núcleo não sabe qual engine está por trás.
type Repository interface {
	// -------- Settings / Service --------
	GetSettings(ctx context.Context) (*models.BarberSettings, error)

	GetActiveService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Availability --------
	ListAppointmentsOnDate(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (create / state change) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listagens --------
	ListAppointmentsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
