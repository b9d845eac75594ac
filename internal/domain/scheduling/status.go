package scheduling

import "github.com/donbarbero/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusAwaiting  Status = "awaiting"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAwaiting, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// canceled e completed são terminais.
var transitions = map[Status][]Status{
	StatusAwaiting:  {StatusConfirmed, StatusCompleted, StatusCanceled},
	StatusConfirmed: {StatusCompleted, StatusCanceled},
}

func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current == StatusCanceled {
		return httperr.ErrBusiness(httperr.CodeAlreadyCanceled)
	}
	if !CanTransition(current, StatusCanceled) {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}

func InitialStatus() Status {
	return StatusAwaiting
}
