package handler

import (
	"net/http"

	"mrp/internal/microservices/http-api/dto"
	"mrp/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the caller's own profile, rating history and favorites.
type UserHandler struct {
	authService     service.AuthService
	ratingService   service.RatingService
	favoriteService service.FavoriteService
}

func NewUserHandler(authService service.AuthService, ratingService service.RatingService, favoriteService service.FavoriteService) *UserHandler {
	return &UserHandler{
		authService:     authService,
		ratingService:   ratingService,
		favoriteService: favoriteService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	me := rg.Group("/me", requireAuth)
	{
		me.GET("", h.GetProfile)
		me.PUT("", h.UpdateProfile)
		me.GET("/ratings", h.ListRatings)
		me.GET("/favorites", h.ListFavorites)
	}
}

// GET /api/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}

// PUT /api/users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, req.Email, req.FavoriteGenre)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}

// GET /api/users/me/ratings
func (h *UserHandler) ListRatings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	ratings, err := h.ratingService.GetUserRatings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	// own history shows comments whether or not they were confirmed
	c.JSON(http.StatusOK, dto.FromModelsToRatingResponses(ratings, true))
}

// GET /api/users/me/favorites
func (h *UserHandler) ListFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	list, err := h.favoriteService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToMediaResponses(list))
}
