package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/donbarbero/booking-api/internal/models"
	"github.com/donbarbero/booking-api/internal/timezone"
)

var errSentinel = errors.New("store indisponível")

// fakeRepo implementa domain.Repository em memória para os testes
// dos casos de uso.
type fakeRepo struct {
	settings    *models.BarberSettings
	settingsErr error

	service    *models.Service
	serviceErr error

	appointments []models.Appointment

	stored *models.Appointment
	getErr error

	createErr error
	created   []*models.Appointment
	updated   []*models.Appointment

	periodStart time.Time
	periodEnd   time.Time
}

func (f *fakeRepo) GetSettings(ctx context.Context) (*models.BarberSettings, error) {
	if f.settingsErr != nil {
		return nil, f.settingsErr
	}
	return f.settings, nil
}

func (f *fakeRepo) GetActiveService(ctx context.Context, id uint) (*models.Service, error) {
	if f.serviceErr != nil {
		return nil, f.serviceErr
	}
	return f.service, nil
}

func (f *fakeRepo) ListAppointmentsOnDate(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.StartAt.Before(dayEnd) && !ap.StartAt.Before(dayStart) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	ap.ID = uint(len(f.created) + 1)
	f.created = append(f.created, ap)
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.stored == nil {
		return nil, errors.New("record not found")
	}
	return f.stored, nil
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.updated = append(f.updated, ap)
	return nil
}

func (f *fakeRepo) ListAppointmentsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	f.periodStart = start
	f.periodEnd = end
	return f.appointments, nil
}

// --------------------------------------------------------
// fixtures
// --------------------------------------------------------

// Expediente padrão de testes: terça a sábado, 09:00–19:00.
func workSettings() *models.BarberSettings {
	return &models.BarberSettings{
		ID:          1,
		StartHour:   "09:00",
		EndHour:     "19:00",
		WorkingDays: "2,3,4,5,6",
	}
}

func cutService() *models.Service {
	return &models.Service{
		ID:              1,
		Name:            "Corte",
		DurationMinutes: 60,
		Price:           50,
		Active:          true,
	}
}

func freeze(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02T15:04:05", value, timezone.Location())
	if err != nil {
		t.Fatalf("instante de teste inválido %q: %v", value, err)
	}
	return ts
}
