package report

import (
	"context"
	"time"

	domain "github.com/donbarbero/booking-api/internal/domain/scheduling"
	"github.com/donbarbero/booking-api/internal/httperr"
	"github.com/donbarbero/booking-api/internal/models"
	"github.com/donbarbero/booking-api/internal/timezone"
)

type Summary struct {
	Total     int `json:"total"`
	Awaiting  int `json:"awaiting"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Canceled  int `json:"canceled"`

	TotalPaid    float64 `json:"total_paid"`
	TotalPending float64 `json:"total_pending"`
}

type FinanceReport struct {
	StartDate    string               `json:"start_date"`
	EndDate      string               `json:"end_date"`
	Summary      Summary              `json:"summary"`
	Appointments []models.Appointment `json:"appointments"`
}

type Finance struct {
	repo domain.Repository
}

func NewFinance(repo domain.Repository) *Finance {
	return &Finance{repo: repo}
}

// Execute agrega o período [startDate, endDate], inclusivo nas duas pontas.
// O filtro de data vai para o store; nada de buscar tudo e filtrar aqui.
func (uc *Finance) Execute(
	ctx context.Context,
	startDate string,
	endDate string,
) (*FinanceReport, error) {

	loc := timezone.Location()

	start, err := time.ParseInLocation("2006-01-02", startDate, loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	end, err := time.ParseInLocation("2006-01-02", endDate, loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	if end.Before(start) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		start,
		end.Add(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}

	return &FinanceReport{
		StartDate:    startDate,
		EndDate:      endDate,
		Summary:      Summarize(appointments),
		Appointments: appointments,
	}, nil
}

// Summarize conta por status e soma receita paga e pendente
// pelo preço do serviço de cada agendamento.
func Summarize(appointments []models.Appointment) Summary {
	s := Summary{Total: len(appointments)}

	for _, ap := range appointments {
		switch domain.Status(ap.Status) {
		case domain.StatusAwaiting:
			s.Awaiting++
		case domain.StatusConfirmed:
			s.Confirmed++
		case domain.StatusCompleted:
			s.Completed++
		case domain.StatusCanceled:
			s.Canceled++
		}

		if ap.PaymentConfirmed {
			s.TotalPaid += ap.Service.Price
		} else {
			s.TotalPending += ap.Service.Price
		}
	}

	return s
}
