package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/donbarbero/booking-api/internal/domain/scheduling"
	"github.com/donbarbero/booking-api/internal/httperr"
	"github.com/donbarbero/booking-api/internal/httpresp"
	"github.com/donbarbero/booking-api/internal/middleware"
	"github.com/donbarbero/booking-api/internal/models"
	"github.com/donbarbero/booking-api/internal/timezone"
	ucScheduling "github.com/donbarbero/booking-api/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db           *gorm.DB
	availability *ucScheduling.GetAvailability
	dates        *ucScheduling.ListAvailableDates
	create       *ucScheduling.CreateBooking
	cancel       *ucScheduling.CancelBooking
}

func NewBookingHandler(
	db *gorm.DB,
	availability *ucScheduling.GetAvailability,
	dates *ucScheduling.ListAvailableDates,
	create *ucScheduling.CreateBooking,
	cancel *ucScheduling.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		db:           db,
		availability: availability,
		dates:        dates,
		create:       create,
		cancel:       cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	StartAt   string `json:"start_at" binding:"required"` // 2006-01-02T15:04:05
	EndAt     string `json:"end_at" binding:"required"`
	Notes     string `json:"notes"`
}

// ======================================================
// SERVICES (público)
// ======================================================

func (h *BookingHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// DATAS E DISPONIBILIDADE
// ======================================================

func (h *BookingHandler) AvailableDates(c *gin.Context) {
	dates, err := h.dates.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

func (h *BookingHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	availability, err := h.availability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			Date:      dateStr,
			ServiceID: uint(serviceID),
		},
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucScheduling.CreateBookingInput{
		UserID:    userID,
		ServiceID: req.ServiceID,
		StartAt:   req.StartAt,
		EndAt:     req.EndAt,
		Notes:     req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Agendamento criado com sucesso!",
		"data": gin.H{
			"id":           ap.ID,
			"control_code": ap.ControlCode,
			"start_at":     ap.StartAt,
			"end_at":       ap.EndAt,
			"status":       ap.Status,
		},
	})
}

// ======================================================
// LIST (meus agendamentos)
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var aps []models.Appointment
	if err := h.db.
		Preload("Service").
		Where("user_id = ?", userID).
		Order("start_at DESC").
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	now := timezone.Now()
	upcoming := make([]models.Appointment, 0)
	past := make([]models.Appointment, 0)

	for _, ap := range aps {
		if ap.StartAt.After(now) && ap.Status != string(domain.StatusCanceled) {
			upcoming = append(upcoming, ap)
		} else {
			past = append(past, ap)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"upcoming": upcoming,
		"past":     past,
	})
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), uint(id), userID)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			c.JSON(businessStatus[code], gin.H{
				"success": false,
				"message": businessMessage[code],
			})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cancelado com sucesso.",
		"data":    ap,
	})
}
