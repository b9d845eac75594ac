package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/donbarbero/booking-api/internal/httperr"
)

var businessStatus = map[string]int{
	httperr.CodeInvalidDate:       http.StatusBadRequest,
	httperr.CodePastDate:          http.StatusBadRequest,
	httperr.CodeDayUnavailable:    http.StatusBadRequest,
	httperr.CodeSettingsMissing:   http.StatusBadRequest,
	httperr.CodeServiceNotFound:   http.StatusBadRequest,
	httperr.CodeInvalidInput:      http.StatusBadRequest,
	httperr.CodePastBooking:       http.StatusBadRequest,
	httperr.CodeSlotUnavailable:   http.StatusConflict,
	httperr.CodeNotFound:          http.StatusNotFound,
	httperr.CodeForbidden:         http.StatusForbidden,
	httperr.CodeAlreadyCanceled:   http.StatusBadRequest,
	httperr.CodeTooLate:           http.StatusBadRequest,
	httperr.CodeInvalidTransition: http.StatusBadRequest,
}

var businessMessage = map[string]string{
	httperr.CodeInvalidDate:       "Data inválida.",
	httperr.CodePastDate:          "Não é possível agendar em datas passadas.",
	httperr.CodeDayUnavailable:    "Barbeiro não trabalha neste dia da semana.",
	httperr.CodeSettingsMissing:   "Configurações do barbeiro não encontradas.",
	httperr.CodeServiceNotFound:   "Serviço não encontrado.",
	httperr.CodeInvalidInput:      "Dados incompletos ou inválidos.",
	httperr.CodePastBooking:       "Não é possível agendar no passado.",
	httperr.CodeSlotUnavailable:   "Este horário não está mais disponível.",
	httperr.CodeNotFound:          "Agendamento não encontrado.",
	httperr.CodeForbidden:         "Sem permissão.",
	httperr.CodeAlreadyCanceled:   "Agendamento já cancelado.",
	httperr.CodeTooLate:           "Cancelamento fora da antecedência mínima.",
	httperr.CodeInvalidTransition: "Mudança de status inválida.",
}

// writeError mapeia erro de negócio para a resposta HTTP; qualquer outro
// erro vira 500 genérico, com a causa só no log.
func writeError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		status, found := businessStatus[code]
		if !found {
			status = http.StatusBadRequest
		}

		message, found := businessMessage[code]
		if !found {
			message = "Operação inválida."
		}

		httperr.Write(c, status, code, message)
		return
	}

	log.Printf("internal error: %v", err)
	httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
}
