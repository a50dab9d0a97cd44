package handler

import (
	"net/http"

	"mrp/internal/microservices/http-api/dto"
	"mrp/internal/microservices/http-api/middleware"
	"mrp/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterMediaRoutes mounts the rating routes nested under /api/media/:id.
func (h *RatingHandler) RegisterMediaRoutes(media *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	validID := middleware.NumericParam("id")

	media.GET("/:id/ratings", validID, h.ListForMedia)
	media.POST("/:id/rate", validID, requireAuth, h.Rate)
}

// RegisterRoutes mounts the routes addressing a single rating under /api/ratings.
func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	validID := middleware.NumericParam("id")

	rg.POST("/:id/confirm", validID, requireAuth, h.Confirm)
	rg.POST("/:id/like", validID, requireAuth, h.Like)
	rg.DELETE("/:id", validID, requireAuth, h.Delete)
}

// POST /api/media/:id/rate
func (h *RatingHandler) Rate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.RateRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	rating, created, err := h.ratingService.Rate(c.Request.Context(), middleware.ParamID(c, "id"), userID, req.Stars, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.FromModelToRatingResponse(rating, true))
}

// GET /api/media/:id/ratings
func (h *RatingHandler) ListForMedia(c *gin.Context) {
	ratings, err := h.ratingService.GetMediaRatings(c.Request.Context(), middleware.ParamID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToRatingResponses(ratings, false))
}

// POST /api/ratings/:id/confirm
func (h *RatingHandler) Confirm(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	rating, err := h.ratingService.ConfirmComment(c.Request.Context(), middleware.ParamID(c, "id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToRatingResponse(rating, true))
}

// POST /api/ratings/:id/like
func (h *RatingHandler) Like(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	ratingID := middleware.ParamID(c, "id")
	likes, err := h.ratingService.LikeRating(c.Request.Context(), ratingID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LikeResponse{RatingID: ratingID, Likes: likes})
}

// DELETE /api/ratings/:id
func (h *RatingHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.ratingService.DeleteRating(c.Request.Context(), middleware.ParamID(c, "id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
