package scheduling

import (
	"context"
	"time"

	domain "github.com/donbarbero/booking-api/internal/domain/scheduling"
	"github.com/donbarbero/booking-api/internal/httperr"
	"github.com/donbarbero/booking-api/internal/timezone"
)

const (
	maxDatesAhead  = 14
	maxDaysScanned = 30
)

var dayNames = map[int]string{
	1: "Segunda",
	2: "Terça",
	3: "Quarta",
	4: "Quinta",
	5: "Sexta",
	6: "Sábado",
	7: "Domingo",
}

// ListAvailableDates devolve as próximas datas de trabalho, para a UI
// montar o seletor de dia.
type ListAvailableDates struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListAvailableDates(repo domain.Repository) *ListAvailableDates {
	return &ListAvailableDates{repo: repo, now: timezone.Now}
}

func (uc *ListAvailableDates) Execute(
	ctx context.Context,
) ([]domain.AvailableDate, error) {

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeSettingsMissing)
	}

	working := settings.WorkingDaySet()
	cur := uc.now()

	dates := make([]domain.AvailableDate, 0, maxDatesAhead)
	for checked := 0; len(dates) < maxDatesAhead && checked < maxDaysScanned; checked++ {
		wd := isoWeekday(cur)
		if working[wd] {
			dates = append(dates, domain.AvailableDate{
				Date:      cur.Format(dateLayout),
				Formatted: cur.Format("02/01/2006"),
				DayName:   dayNames[wd],
				IsToday:   checked == 0,
			})
		}
		cur = cur.AddDate(0, 0, 1)
	}

	return dates, nil
}
