package handler

import (
	"net/http"

	"mrp/internal/microservices/http-api/dto"
	"mrp/internal/microservices/http-api/middleware"
	"mrp/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	svc service.MediaService
}

func NewMediaHandler(svc service.MediaService) *MediaHandler {
	return &MediaHandler{svc: svc}
}

func (h *MediaHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	validID := middleware.NumericParam("id")

	// Public routes
	rg.GET("", h.List)
	rg.GET("/:id", validID, h.Get)

	// Authenticated routes, creator checks happen in the service
	rg.POST("", requireAuth, h.Create)
	rg.PUT("/:id", validID, requireAuth, h.Update)
	rg.DELETE("/:id", validID, requireAuth, h.Delete)
}

// GET /api/media
func (h *MediaHandler) List(c *gin.Context) {
	list, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToMediaResponses(list))
}

// GET /api/media/:id
func (h *MediaHandler) Get(c *gin.Context) {
	m, err := h.svc.GetByID(c.Request.Context(), middleware.ParamID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToMediaResponse(m))
}

// POST /api/media
func (h *MediaHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var in dto.MediaRequest
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}
	if err := in.Validate(); err != nil {
		respondError(c, err)
		return
	}

	model := in.ToModel()
	created, err := h.svc.Create(c.Request.Context(), &model, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToMediaResponse(created))
}

// PUT /api/media/:id
func (h *MediaHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var in dto.MediaRequest
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}
	if err := in.Validate(); err != nil {
		respondError(c, err)
		return
	}

	model := in.ToModel()
	if err := h.svc.Update(c.Request.Context(), middleware.ParamID(c, "id"), &model, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Media updated successfully"})
}

// DELETE /api/media/:id
func (h *MediaHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.ParamID(c, "id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
