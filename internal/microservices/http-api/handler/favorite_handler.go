package handler

import (
	"net/http"

	"mrp/internal/microservices/http-api/dto"
	"mrp/internal/microservices/http-api/middleware"
	"mrp/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// RegisterMediaRoutes mounts the favorite toggles nested under /api/media/:id.
func (h *FavoriteHandler) RegisterMediaRoutes(media *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	validID := middleware.NumericParam("id")

	media.POST("/:id/favorite", validID, requireAuth, h.Add)
	media.DELETE("/:id/favorite", validID, requireAuth, h.Remove)
}

// POST /api/media/:id/favorite
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.favoriteService.Add(c.Request.Context(), userID, middleware.ParamID(c, "id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Media added to favorites"})
}

// DELETE /api/media/:id/favorite
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.favoriteService.Remove(c.Request.Context(), userID, middleware.ParamID(c, "id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
