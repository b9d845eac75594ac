package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/donbarbero/booking-api/internal/domain/scheduling"
	"github.com/donbarbero/booking-api/internal/httperr"
	"github.com/donbarbero/booking-api/internal/middleware"
	"github.com/donbarbero/booking-api/internal/models"
	"github.com/donbarbero/booking-api/internal/payment"
	ucScheduling "github.com/donbarbero/booking-api/internal/usecase/scheduling"
)

type PaymentHandler struct {
	db             *gorm.DB
	mp             *payment.Client
	confirmPayment *ucScheduling.ConfirmPayment
}

func NewPaymentHandler(
	db *gorm.DB,
	mp *payment.Client,
	confirmPayment *ucScheduling.ConfirmPayment,
) *PaymentHandler {
	return &PaymentHandler{
		db:             db,
		mp:             mp,
		confirmPayment: confirmPayment,
	}
}

// CreateCheckout gera o link de pagamento de um agendamento do próprio
// cliente ainda não pago.
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	if h.mp == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "payments_disabled", "Pagamento online não configurado.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	var ap models.Appointment
	if err := h.db.Preload("Service").First(&ap, id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	if ap.UserID != userID {
		httperr.Forbidden(c, "forbidden", "Sem permissão.")
		return
	}

	if ap.Status == string(domain.StatusCanceled) {
		httperr.BadRequest(c, "already_canceled", "Agendamento cancelado.")
		return
	}

	if ap.PaymentConfirmed {
		httperr.BadRequest(c, "already_paid", "Pagamento já confirmado.")
		return
	}

	initPoint, err := h.mp.CreateCheckout(c.Request.Context(), &ap, &ap.Service)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_url": initPoint})
}

type WebhookNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Webhook recebe a notificação do Mercado Pago, consulta o pagamento e,
// se aprovado, confirma pelo control code em external_reference.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	if h.mp == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}

	var notif WebhookNotification
	if err := c.ShouldBindJSON(&notif); err != nil || notif.Type != "payment" {
		// notificações de outros tópicos são reconhecidas e ignoradas
		c.Status(http.StatusOK)
		return
	}

	paymentID, err := strconv.Atoi(notif.Data.ID)
	if err != nil {
		c.Status(http.StatusOK)
		return
	}

	status, controlCode, err := h.mp.PaymentStatus(c.Request.Context(), paymentID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	if status != payment.StatusApproved || controlCode == "" {
		c.Status(http.StatusOK)
		return
	}

	var ap models.Appointment
	if err := h.db.Where("control_code = ?", controlCode).First(&ap).Error; err != nil {
		c.Status(http.StatusOK)
		return
	}

	if _, err := h.confirmPayment.Execute(c.Request.Context(), nil, ap.ID); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
