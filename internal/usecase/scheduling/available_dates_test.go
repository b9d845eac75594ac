package scheduling

import (
	"context"
	"testing"

	"github.com/donbarbero/booking-api/internal/httperr"
)

func TestListAvailableDates(t *testing.T) {
	repo := &fakeRepo{settings: workSettings()}

	uc := NewListAvailableDates(repo)
	// terça, dia útil
	uc.now = freeze(at(t, "2026-01-06T08:00:00"))

	dates, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(dates) != maxDatesAhead {
		t.Fatalf("datas = %d, esperava %d", len(dates), maxDatesAhead)
	}

	first := dates[0]
	if first.Date != "2026-01-06" || !first.IsToday {
		t.Errorf("primeira data = %+v, esperava hoje (2026-01-06)", first)
	}
	if first.DayName != "Terça" || first.Formatted != "06/01/2026" {
		t.Errorf("rótulos da primeira data incorretos: %+v", first)
	}

	for i, d := range dates {
		if d.DayName == "Domingo" || d.DayName == "Segunda" {
			t.Errorf("data %d (%s) cai fora do expediente", i, d.Date)
		}
		if i > 0 && d.IsToday {
			t.Errorf("apenas a primeira data pode ser hoje: %+v", d)
		}
	}
}

// Começando num dia fora do expediente, a lista pula para o próximo
// dia útil e nada é marcado como hoje.
func TestListAvailableDatesSkipsClosedToday(t *testing.T) {
	repo := &fakeRepo{settings: workSettings()}

	uc := NewListAvailableDates(repo)
	// segunda, fechado
	uc.now = freeze(at(t, "2026-01-05T08:00:00"))

	dates, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if dates[0].Date != "2026-01-06" {
		t.Errorf("primeira data = %s, esperava 2026-01-06", dates[0].Date)
	}
	for _, d := range dates {
		if d.IsToday {
			t.Errorf("nenhuma data deveria ser hoje: %+v", d)
		}
	}
}

func TestListAvailableDatesSettingsMissing(t *testing.T) {
	repo := &fakeRepo{settingsErr: errSentinel}

	uc := NewListAvailableDates(repo)
	_, err := uc.Execute(context.Background())
	if !httperr.IsBusiness(err, httperr.CodeSettingsMissing) {
		t.Fatalf("erro = %v, esperava settings_missing", err)
	}
}
