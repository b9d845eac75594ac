package scheduling

import (
	"context"
	"time"

	domain "github.com/donbarbero/booking-api/internal/domain/scheduling"
	"github.com/donbarbero/booking-api/internal/httperr"
	"github.com/donbarbero/booking-api/internal/models"
	"github.com/donbarbero/booking-api/internal/timezone"
)

const (
	dateLayout = "2006-01-02"

	// minAdvance: agendamento para hoje precisa começar ao menos 1h à frente.
	minAdvance = time.Hour

	// slotRounding: após aplicar minAdvance, o primeiro slot arredonda
	// para cima no próximo múltiplo de 15 minutos.
	slotRounding = 15 * time.Minute
)

type GetAvailability struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo, now: timezone.Now}
}

// Execute calcula os slots livres de uma data para um serviço. Função pura
// das entradas (data, serviço, settings, agendamentos do dia, "now").
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {

	loc := timezone.Location()

	date, err := time.ParseInLocation(dateLayout, in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if date.Before(today) {
		return nil, httperr.ErrBusiness(httperr.CodePastDate)
	}

	service, err := uc.repo.GetActiveService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeSettingsMissing)
	}

	if !settings.WorkingDaySet()[isoWeekday(date)] {
		return nil, httperr.ErrBusiness(httperr.CodeDayUnavailable)
	}

	candidates := generateSlots(date, service, settings, now)

	appointments, err := uc.repo.ListAppointmentsOnDate(
		ctx,
		date,
		date.Add(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}

	return &domain.Availability{
		Date: in.Date,
		Service: domain.ServiceSummary{
			ID:              service.ID,
			Name:            service.Name,
			DurationMinutes: service.DurationMinutes,
			Price:           service.Price,
		},
		Slots: filterAvailable(candidates, appointments),
	}, nil
}

// generateSlots emite janelas [cur, cur+duração) encostadas uma na outra,
// do horário de abertura até onde a última couber antes do fechamento.
// Dia mais curto que a duração → lista vazia, não é erro.
func generateSlots(
	date time.Time,
	service *models.Service,
	settings *models.BarberSettings,
	now time.Time,
) []domain.Slot {

	if service.DurationMinutes <= 0 {
		return nil
	}

	cur := combine(date, settings.StartHour)
	boundary := combine(date, settings.EndHour)

	if sameDay(date, now) {
		minimum := now.Add(minAdvance)
		if cur.Before(minimum) {
			cur = ceilToRounding(minimum)
		}
	}

	duration := time.Duration(service.DurationMinutes) * time.Minute

	var slots []domain.Slot
	for !cur.Add(duration).After(boundary) {
		end := cur.Add(duration)
		slots = append(slots, domain.Slot{
			Start:     cur,
			End:       end,
			StartTime: cur.Format("15:04"),
			EndTime:   end.Format("15:04"),
			Available: true,
		})
		cur = end
	}

	return slots
}

// filterAvailable remove candidatos que conflitam com agendamento não
// cancelado. Preserva a ordem; cancelados nunca restringem o dia.
func filterAvailable(
	candidates []domain.Slot,
	appointments []models.Appointment,
) []domain.Slot {

	available := make([]domain.Slot, 0, len(candidates))

	for _, slot := range candidates {
		for _, ap := range appointments {
			if ap.Status == string(domain.StatusCanceled) {
				continue
			}
			if domain.Overlaps(slot.Start, slot.End, ap.StartAt, ap.EndAt) {
				slot.Available = false
				break
			}
		}

		if slot.Available {
			available = append(available, slot)
		}
	}

	return available
}

func combine(date time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}

// ceilToRounding zera os segundos e sobe o minuto para o próximo múltiplo
// de 15; minuto 60 vira a hora seguinte.
func ceilToRounding(t time.Time) time.Time {
	t = t.Truncate(time.Minute)
	if rem := t.Minute() % int(slotRounding.Minutes()); rem != 0 {
		t = t.Add(time.Duration(int(slotRounding.Minutes())-rem) * time.Minute)
	}
	return t
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// isoWeekday converte para 1=segunda .. 7=domingo.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}
