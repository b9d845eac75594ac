package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/donbarbero/booking-api/internal/httperr"
	"github.com/donbarbero/booking-api/internal/middleware"
	"github.com/donbarbero/booking-api/internal/models"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	WhatsApp *string `json:"whatsapp,omitempty"`

	// Troca de senha exige a senha atual.
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) < 3 {
			httperr.BadRequest(c, "invalid_name", "O nome precisa de ao menos 3 caracteres.")
			return
		}
		user.Name = name
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))

		var count int64
		h.db.Model(&models.User{}).
			Where("email = ? AND id <> ?", email, userID).
			Count(&count)
		if count > 0 {
			httperr.BadRequest(c, "email_already_exists", "Este email já está em uso.")
			return
		}

		user.Email = email
	}

	if req.WhatsApp != nil {
		user.WhatsApp = *req.WhatsApp
	}

	if req.NewPassword != "" {
		if req.CurrentPassword == "" {
			httperr.BadRequest(c, "missing_current_password", "Informe a senha atual.")
			return
		}

		if err := bcrypt.CompareHashAndPassword(
			[]byte(user.PasswordHash),
			[]byte(req.CurrentPassword),
		); err != nil {
			httperr.BadRequest(c, "wrong_password", "Senha atual incorreta.")
			return
		}

		if len(req.NewPassword) < 6 {
			httperr.BadRequest(c, "weak_password", "A nova senha precisa de ao menos 6 caracteres.")
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erro ao atualizar senha.")
			return
		}
		user.PasswordHash = string(hashed)
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Erro ao atualizar perfil.")
		return
	}

	c.JSON(http.StatusOK, user)
}
