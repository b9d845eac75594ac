package httperr

import "errors"

// Códigos de negócio do agendamento. Cada um vira uma resposta HTTP
// amigável no handler; nenhum derruba o processo.
const (
	CodeInvalidDate       = "invalid_date"
	CodePastDate          = "past_date"
	CodeDayUnavailable    = "day_unavailable"
	CodeSettingsMissing   = "settings_missing"
	CodeServiceNotFound   = "service_not_found"
	CodeInvalidInput      = "invalid_input"
	CodePastBooking       = "past_booking"
	CodeSlotUnavailable   = "slot_unavailable"
	CodeNotFound          = "appointment_not_found"
	CodeForbidden         = "forbidden"
	CodeAlreadyCanceled   = "already_canceled"
	CodeTooLate           = "too_late"
	CodeInvalidTransition = "invalid_status_transition"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode devolve o código de negócio do erro, se houver.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
