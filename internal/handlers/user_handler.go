package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/slotframe-app/slotframe/internal/dto"
	"github.com/slotframe-app/slotframe/internal/httperr"
	"github.com/slotframe-app/slotframe/internal/httpresp"
	"github.com/slotframe-app/slotframe/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("created_at ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Failed to list users.")
		return
	}

	out := make([]dto.UserListDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserListDTO{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			IsAdmin:   u.IsAdmin,
			CreatedAt: u.CreatedAt,
		})
	}

	httpresp.List(c, out)
}
