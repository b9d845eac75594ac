package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/donbarbero/booking-api/internal/httperr"
	"github.com/donbarbero/booking-api/internal/models"
)

func newCancelBooking(repo *fakeRepo, now time.Time) *CancelBooking {
	uc := NewCancelBooking(repo, nil, 2*time.Hour)
	uc.now = freeze(now)
	return uc
}

func storedAppointment(t *testing.T, start string, status string) *models.Appointment {
	t.Helper()
	s := at(t, start)
	return &models.Appointment{
		ID:        42,
		UserID:    7,
		ServiceID: 1,
		StartAt:   s,
		EndAt:     s.Add(time.Hour),
		Status:    status,
	}
}

func TestCancelBookingSuccess(t *testing.T) {
	now := at(t, "2026-01-06T10:00:00")
	ap := storedAppointment(t, "2026-01-06T14:00:00", "awaiting")
	repo := &fakeRepo{stored: ap}

	got, err := newCancelBooking(repo, now).Execute(context.Background(), 42, 7)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if got.Status != "canceled" {
		t.Errorf("status = %q, esperava canceled", got.Status)
	}
	if got.CancelledAt == nil || !got.CancelledAt.Equal(now) {
		t.Errorf("cancelled_at = %v, esperava %v", got.CancelledAt, now)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("updates = %d, esperava 1", len(repo.updated))
	}
}

// Antecedência padrão de 2h: exatamente 2h ainda passa, 1h59 não.
func TestCancelBookingNotice(t *testing.T) {
	cases := []struct {
		name    string
		start   string
		wantErr bool
	}{
		{"90 minutos antes", "2026-01-06T11:30:00", true},
		{"1h59 antes", "2026-01-06T11:59:00", true},
		{"exatamente 2h antes", "2026-01-06T12:00:00", false},
		{"3h antes", "2026-01-06T13:00:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			now := at(t, "2026-01-06T10:00:00")
			repo := &fakeRepo{stored: storedAppointment(t, tc.start, "confirmed")}

			_, err := newCancelBooking(repo, now).Execute(context.Background(), 42, 7)
			if tc.wantErr {
				if !httperr.IsBusiness(err, httperr.CodeTooLate) {
					t.Fatalf("erro = %v, esperava too_late", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
		})
	}
}

func TestCancelBookingErrors(t *testing.T) {
	now := at(t, "2026-01-06T10:00:00")

	cases := []struct {
		name   string
		repo   *fakeRepo
		userID uint
		code   string
	}{
		{
			name:   "agendamento inexistente",
			repo:   &fakeRepo{getErr: errSentinel},
			userID: 7,
			code:   httperr.CodeNotFound,
		},
		{
			name:   "agendamento de outro cliente",
			repo:   &fakeRepo{stored: storedAppointment(t, "2026-01-06T14:00:00", "awaiting")},
			userID: 9,
			code:   httperr.CodeForbidden,
		},
		{
			name:   "já cancelado",
			repo:   &fakeRepo{stored: storedAppointment(t, "2026-01-06T14:00:00", "canceled")},
			userID: 7,
			code:   httperr.CodeAlreadyCanceled,
		},
		{
			name:   "já concluído",
			repo:   &fakeRepo{stored: storedAppointment(t, "2026-01-06T14:00:00", "completed")},
			userID: 7,
			code:   httperr.CodeInvalidTransition,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newCancelBooking(tc.repo, now).Execute(context.Background(), 42, tc.userID)
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("erro = %v, esperava %q", err, tc.code)
			}
			if len(tc.repo.updated) != 0 {
				t.Error("nenhum update deveria ter ocorrido")
			}
		})
	}
}
