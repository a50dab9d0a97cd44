package handler

import (
	"log/slog"

	"mrp/internal/config"
	"mrp/internal/microservices/http-api/middleware"
	"mrp/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// Services bundles what the router dispatches to.
type Services struct {
	Auth     service.AuthService
	Media    service.MediaService
	Rating   service.RatingService
	Favorite service.FavoriteService
}

// NewRouter builds the HTTP API. Unknown paths answer 404 and known paths with the
// wrong method answer 405, both as JSON.
func NewRouter(cfg *config.Config, svcs Services, logger *slog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery())
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.NoRoute(notFound)
	r.NoMethod(methodNotAllowed)

	requireAuth := middleware.AuthMiddleware(svcs.Auth)

	r.GET("/", NewHealthHandler(cfg.ServerVersion).Status)

	api := r.Group("/api")

	users := api.Group("/users")
	NewAuthHandler(svcs.Auth).RegisterRoutes(users)
	NewUserHandler(svcs.Auth, svcs.Rating, svcs.Favorite).RegisterRoutes(users, requireAuth)

	ratingHandler := NewRatingHandler(svcs.Rating)
	media := api.Group("/media")
	NewMediaHandler(svcs.Media).RegisterRoutes(media, requireAuth)
	ratingHandler.RegisterMediaRoutes(media, requireAuth)
	NewFavoriteHandler(svcs.Favorite).RegisterMediaRoutes(media, requireAuth)

	ratingHandler.RegisterRoutes(api.Group("/ratings"), requireAuth)

	return r
}
