package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/donbarbero/booking-api/internal/httperr"
	"github.com/donbarbero/booking-api/internal/models"
)

type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

type UpdateSettingsRequest struct {
	StartHour   string `json:"start_hour" binding:"required"`   // "09:00"
	EndHour     string `json:"end_hour" binding:"required"`     // "19:00"
	WorkingDays []int  `json:"working_days" binding:"required"` // 1=segunda .. 7=domingo
}

func (h *SettingsHandler) Get(c *gin.Context) {
	var settings models.BarberSettings
	if err := h.db.First(&settings).Error; err != nil {
		httperr.NotFound(c, "settings_missing", "Configurações não encontradas.")
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := time.Parse("15:04", req.StartHour)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_hour", "Horário de abertura inválido.")
		return
	}

	end, err := time.Parse("15:04", req.EndHour)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_hour", "Horário de fechamento inválido.")
		return
	}

	if !start.Before(end) {
		httperr.BadRequest(c, "invalid_hours", "Abertura deve ser antes do fechamento.")
		return
	}

	if len(req.WorkingDays) == 0 {
		httperr.BadRequest(c, "invalid_working_days", "Informe ao menos um dia de trabalho.")
		return
	}

	seen := make(map[int]bool)
	days := make([]string, 0, len(req.WorkingDays))
	for _, d := range req.WorkingDays {
		if d < 1 || d > 7 {
			httperr.BadRequest(c, "invalid_working_days", "Dias válidos: 1 (segunda) a 7 (domingo).")
			return
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, strconv.Itoa(d))
	}

	var settings models.BarberSettings
	err = h.db.First(&settings).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		httperr.Internal(c, "failed_to_load_settings", "Erro ao carregar configurações.")
		return
	}

	settings.StartHour = req.StartHour
	settings.EndHour = req.EndHour
	settings.WorkingDays = strings.Join(days, ",")

	if err := h.db.Save(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_update_settings", "Erro ao salvar configurações.")
		return
	}

	c.JSON(http.StatusOK, settings)
}
