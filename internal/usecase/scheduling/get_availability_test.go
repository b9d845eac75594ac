package scheduling

import (
	"context"
	"testing"
	"time"

	domain "github.com/donbarbero/booking-api/internal/domain/scheduling"
	"github.com/donbarbero/booking-api/internal/httperr"
	"github.com/donbarbero/booking-api/internal/models"
)

// 2026-01-06 é uma terça (dia útil do fixture); 2026-01-05 a segunda
// anterior, fora do expediente.

func newAvailability(repo *fakeRepo, now time.Time) *GetAvailability {
	uc := NewGetAvailability(repo)
	uc.now = freeze(now)
	return uc
}

func TestGetAvailabilityFullDay(t *testing.T) {
	repo := &fakeRepo{settings: workSettings(), service: cutService()}
	uc := newAvailability(repo, at(t, "2026-01-05T10:00:00"))

	out, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      "2026-01-06",
		ServiceID: 1,
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(out.Slots) != 10 {
		t.Fatalf("slots = %d, esperava 10", len(out.Slots))
	}
	if out.Slots[0].StartTime != "09:00" || out.Slots[0].EndTime != "10:00" {
		t.Errorf("primeiro slot = %s–%s, esperava 09:00–10:00",
			out.Slots[0].StartTime, out.Slots[0].EndTime)
	}
	if last := out.Slots[len(out.Slots)-1]; last.StartTime != "18:00" || last.EndTime != "19:00" {
		t.Errorf("último slot = %s–%s, esperava 18:00–19:00", last.StartTime, last.EndTime)
	}

	// janelas encostadas, sem buraco nem sobreposição
	for i := 1; i < len(out.Slots); i++ {
		if !out.Slots[i].Start.Equal(out.Slots[i-1].End) {
			t.Errorf("slot %d não encosta no anterior: %v != %v",
				i, out.Slots[i].Start, out.Slots[i-1].End)
		}
	}
	for _, s := range out.Slots {
		if got := s.End.Sub(s.Start); got != time.Hour {
			t.Errorf("duração do slot %s = %v, esperava 1h", s.StartTime, got)
		}
		if !s.Available {
			t.Errorf("slot %s deveria estar livre", s.StartTime)
		}
	}

	if out.Service.Name != "Corte" || out.Service.DurationMinutes != 60 {
		t.Errorf("resumo do serviço incorreto: %+v", out.Service)
	}
}

func TestGetAvailabilityShorterService(t *testing.T) {
	svc := cutService()
	svc.DurationMinutes = 30

	repo := &fakeRepo{settings: workSettings(), service: svc}
	uc := newAvailability(repo, at(t, "2026-01-05T10:00:00"))

	out, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      "2026-01-06",
		ServiceID: 1,
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(out.Slots) != 20 {
		t.Fatalf("slots = %d, esperava 20 para serviço de 30min", len(out.Slots))
	}
}

func TestGetAvailabilityTodayMinAdvance(t *testing.T) {
	cases := []struct {
		name       string
		now        string
		firstStart string
		slots      int
	}{
		// 08:50 + 1h = 09:50 → arredonda e vira a hora: 10:00
		{"arredonda virando a hora", "2026-01-06T08:50:00", "10:00", 9},
		// 10:20 + 1h = 11:20 → arredonda para 11:30
		{"arredonda para cima", "2026-01-06T10:20:00", "11:30", 7},
		// 10:00 + 1h = 11:00, já é múltiplo de 15
		{"sem arredondar", "2026-01-06T10:00:00", "11:00", 8},
		// segundos são zerados antes de arredondar
		{"zera segundos", "2026-01-06T10:20:45", "11:30", 7},
		// antes da abertura: dia inteiro disponível
		{"antes da abertura", "2026-01-06T07:30:00", "09:00", 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{settings: workSettings(), service: cutService()}
			uc := newAvailability(repo, at(t, tc.now))

			out, err := uc.Execute(context.Background(), domain.AvailabilityInput{
				Date:      "2026-01-06",
				ServiceID: 1,
			})
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if len(out.Slots) == 0 {
				t.Fatal("nenhum slot gerado")
			}
			if got := out.Slots[0].StartTime; got != tc.firstStart {
				t.Errorf("primeiro slot = %s, esperava %s", got, tc.firstStart)
			}
			if len(out.Slots) != tc.slots {
				t.Errorf("slots = %d, esperava %d", len(out.Slots), tc.slots)
			}
			if sec := out.Slots[0].Start.Second(); sec != 0 {
				t.Errorf("slot com segundos = %d, esperava 0", sec)
			}
		})
	}
}

func TestGetAvailabilityDayTooShort(t *testing.T) {
	settings := workSettings()
	settings.EndHour = "10:00"

	svc := cutService()
	svc.DurationMinutes = 90

	repo := &fakeRepo{settings: settings, service: svc}
	uc := newAvailability(repo, at(t, "2026-01-05T08:00:00"))

	out, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      "2026-01-06",
		ServiceID: 1,
	})
	if err != nil {
		t.Fatalf("dia curto não é erro: %v", err)
	}
	if len(out.Slots) != 0 {
		t.Fatalf("slots = %d, esperava 0", len(out.Slots))
	}
}

func TestGetAvailabilityConflicts(t *testing.T) {
	busy := func(start, end string, status string) models.Appointment {
		return models.Appointment{
			StartAt: at(t, start),
			EndAt:   at(t, end),
			Status:  status,
		}
	}

	cases := []struct {
		name     string
		existing []models.Appointment
		blocked  []string
	}{
		{
			name:     "ocupa um slot exato",
			existing: []models.Appointment{busy("2026-01-06T10:00:00", "2026-01-06T11:00:00", "awaiting")},
			blocked:  []string{"10:00"},
		},
		{
			name:     "sobreposição parcial bloqueia os dois vizinhos",
			existing: []models.Appointment{busy("2026-01-06T10:30:00", "2026-01-06T11:30:00", "confirmed")},
			blocked:  []string{"10:00", "11:00"},
		},
		{
			name:     "cancelado não restringe nada",
			existing: []models.Appointment{busy("2026-01-06T10:00:00", "2026-01-06T11:00:00", "canceled")},
			blocked:  nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{
				settings:     workSettings(),
				service:      cutService(),
				appointments: tc.existing,
			}
			uc := newAvailability(repo, at(t, "2026-01-05T10:00:00"))

			out, err := uc.Execute(context.Background(), domain.AvailabilityInput{
				Date:      "2026-01-06",
				ServiceID: 1,
			})
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}

			got := make(map[string]bool, len(out.Slots))
			for _, s := range out.Slots {
				got[s.StartTime] = true
			}
			for _, b := range tc.blocked {
				if got[b] {
					t.Errorf("slot %s deveria estar ocupado", b)
				}
			}
			if want := 10 - len(tc.blocked); len(out.Slots) != want {
				t.Errorf("slots livres = %d, esperava %d", len(out.Slots), want)
			}
		})
	}
}

// Extremos encostados: agendamento 10:00–11:00 não bloqueia 09:00–10:00
// nem 11:00–12:00.
func TestGetAvailabilityTouchingEdges(t *testing.T) {
	repo := &fakeRepo{
		settings: workSettings(),
		service:  cutService(),
		appointments: []models.Appointment{{
			StartAt: at(t, "2026-01-06T10:00:00"),
			EndAt:   at(t, "2026-01-06T11:00:00"),
			Status:  "awaiting",
		}},
	}
	uc := newAvailability(repo, at(t, "2026-01-05T10:00:00"))

	out, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      "2026-01-06",
		ServiceID: 1,
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	starts := make(map[string]bool)
	for _, s := range out.Slots {
		starts[s.StartTime] = true
	}
	if !starts["09:00"] || !starts["11:00"] {
		t.Errorf("vizinhos 09:00 e 11:00 deveriam continuar livres: %v", starts)
	}
	if starts["10:00"] {
		t.Error("slot 10:00 deveria estar ocupado")
	}
}

func TestGetAvailabilityErrors(t *testing.T) {
	now := at(t, "2026-01-06T10:00:00")

	cases := []struct {
		name string
		repo *fakeRepo
		date string
		code string
	}{
		{
			name: "formato de data inválido",
			repo: &fakeRepo{settings: workSettings(), service: cutService()},
			date: "06/01/2026",
			code: httperr.CodeInvalidDate,
		},
		{
			name: "data no passado",
			repo: &fakeRepo{settings: workSettings(), service: cutService()},
			date: "2026-01-05",
			code: httperr.CodePastDate,
		},
		{
			name: "serviço inexistente ou inativo",
			repo: &fakeRepo{settings: workSettings(), serviceErr: errSentinel},
			date: "2026-01-07",
			code: httperr.CodeServiceNotFound,
		},
		{
			name: "expediente não configurado",
			repo: &fakeRepo{settingsErr: errSentinel, service: cutService()},
			date: "2026-01-07",
			code: httperr.CodeSettingsMissing,
		},
		{
			name: "domingo fora do expediente",
			repo: &fakeRepo{settings: workSettings(), service: cutService()},
			date: "2026-01-11",
			code: httperr.CodeDayUnavailable,
		},
		{
			name: "segunda fora do expediente",
			repo: &fakeRepo{settings: workSettings(), service: cutService()},
			date: "2026-01-12",
			code: httperr.CodeDayUnavailable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newAvailability(tc.repo, now)

			_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
				Date:      tc.date,
				ServiceID: 1,
			})
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("erro = %v, esperava código %q", err, tc.code)
			}
		})
	}
}

// Hoje ainda conta: data igual a hoje nunca é past_date.
func TestGetAvailabilityTodayIsNotPast(t *testing.T) {
	repo := &fakeRepo{settings: workSettings(), service: cutService()}
	uc := newAvailability(repo, at(t, "2026-01-06T18:30:00"))

	out, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      "2026-01-06",
		ServiceID: 1,
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	// 18:30 + 1h passa do fechamento: dia válido, porém sem slots.
	if len(out.Slots) != 0 {
		t.Fatalf("slots = %d, esperava 0 no fim do expediente", len(out.Slots))
	}
}

func TestIsoWeekday(t *testing.T) {
	cases := []struct {
		date string
		want int
	}{
		{"2026-01-05", 1}, // segunda
		{"2026-01-06", 2},
		{"2026-01-10", 6}, // sábado
		{"2026-01-11", 7}, // domingo
	}
	for _, tc := range cases {
		d := at(t, tc.date+"T00:00:00")
		if got := isoWeekday(d); got != tc.want {
			t.Errorf("isoWeekday(%s) = %d, esperava %d", tc.date, got, tc.want)
		}
	}
}
