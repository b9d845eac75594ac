package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/donbarbero/booking-api/internal/httperr"
	"github.com/donbarbero/booking-api/internal/middleware"
	"github.com/donbarbero/booking-api/internal/models"
	"github.com/donbarbero/booking-api/internal/timezone"
	ucReport "github.com/donbarbero/booking-api/internal/usecase/report"
	ucScheduling "github.com/donbarbero/booking-api/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db             *gorm.DB
	updateStatus   *ucScheduling.UpdateStatus
	confirmPayment *ucScheduling.ConfirmPayment
	finance        *ucReport.Finance
}

func NewAdminHandler(
	db *gorm.DB,
	updateStatus *ucScheduling.UpdateStatus,
	confirmPayment *ucScheduling.ConfirmPayment,
	finance *ucReport.Finance,
) *AdminHandler {
	return &AdminHandler{
		db:             db,
		updateStatus:   updateStatus,
		confirmPayment: confirmPayment,
		finance:        finance,
	}
}

// ======================================================
// LIST (filtros: today | tomorrow | week | all)
// ======================================================

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	filter := c.DefaultQuery("filter", "all")
	status := c.Query("status")

	q := h.db.
		Preload("User").
		Preload("Service").
		Order("start_at DESC")

	today := startOfDay(timezone.Now())

	switch filter {
	case "today":
		q = q.Where("start_at >= ? AND start_at < ?", today, today.Add(24*time.Hour))
	case "tomorrow":
		tomorrow := today.Add(24 * time.Hour)
		q = q.Where("start_at >= ? AND start_at < ?", tomorrow, tomorrow.Add(24*time.Hour))
	case "week":
		q = q.Where("start_at >= ? AND start_at < ?", today, today.AddDate(0, 0, 7))
	}

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var aps []models.Appointment
	if err := q.Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointments": aps,
		"summary":      ucReport.Summarize(aps),
	})
}

// ======================================================
// STATUS / PAGAMENTO
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), adminID, uint(id), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AdminHandler) ConfirmPayment(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	ap, err := h.confirmPayment.Execute(c.Request.Context(), &adminID, uint(id))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// FINANCEIRO
// ======================================================

func (h *AdminHandler) Finance(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	if startDate == "" || endDate == "" {
		httperr.BadRequest(c, "missing_period", "Período obrigatório.")
		return
	}

	result, err := h.finance.Execute(c.Request.Context(), startDate, endDate)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AdminHandler) FinanceExport(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	if startDate == "" || endDate == "" {
		httperr.BadRequest(c, "missing_period", "Período obrigatório.")
		return
	}

	result, err := h.finance.Execute(c.Request.Context(), startDate, endDate)
	if err != nil {
		writeError(c, err)
		return
	}

	filename := fmt.Sprintf("relatorio_financeiro_%s_%s.csv", startDate, endDate)

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	// BOM para planilhas abrirem UTF-8 corretamente
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(c.Writer)
	defer w.Flush()

	w.Write([]string{
		"Data", "Hora", "Cliente", "Email", "Serviço",
		"Valor", "Status", "Pagamento", "Código",
	})

	for _, ap := range result.Appointments {
		paymentLabel := "Pendente"
		if ap.PaymentConfirmed {
			paymentLabel = "Pago"
		}

		w.Write([]string{
			ap.StartAt.Format("02/01/2006"),
			ap.StartAt.Format("15:04"),
			ap.User.Name,
			ap.User.Email,
			ap.Service.Name,
			fmt.Sprintf("%.2f", ap.Service.Price),
			ap.Status,
			paymentLabel,
			ap.ControlCode,
		})
	}
}
