package upload

import (
	"errors"
	"net/http"
	"strconv"

	"servicehub/internal/authz"
	"servicehub/internal/domain"
	"servicehub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/customer-posts/:id/media", h.ListForCustomerPost)
	v1.GET("/worker-posts/:id/media", h.ListForWorkerPost)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/customer-posts/:id/media", h.AttachToCustomerPost)
	protected.POST("/worker-posts/:id/media", h.AttachToWorkerPost)
	protected.DELETE("/media/:id", h.Detach)
	protected.POST("/users/me/avatar", h.SetAvatar)
}

func principalFromContext(c *gin.Context) authz.Principal {
	return authz.Principal{
		UserID: c.GetInt64("user_id"),
		Role:   domain.UserRole(c.GetString("role")),
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPostNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Post not found")
	case errors.Is(err, ErrMediaNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Media not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You may not manage media on this post")
	case errors.Is(err, ErrInvalidFormat):
		response.Error(c, http.StatusBadRequest, "INVALID_FORMAT", "Only jpg, jpeg, png, gif, mp4, mov, webm files are allowed")
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusBadRequest, "FILE_TOO_LARGE", "File exceeds the size limit")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}

func (h *Handler) AttachToCustomerPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "A file is required")
		return
	}

	medium, err := h.service.AttachToCustomerPost(c.Request.Context(), principalFromContext(c), id, file)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"media": medium})
}

func (h *Handler) AttachToWorkerPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "A file is required")
		return
	}

	medium, err := h.service.AttachToWorkerPost(c.Request.Context(), principalFromContext(c), id, file)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"media": medium})
}

func (h *Handler) Detach(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.Detach(c.Request.Context(), principalFromContext(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) SetAvatar(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "A file is required")
		return
	}

	user, err := h.service.SetAvatar(c.Request.Context(), c.GetInt64("user_id"), file)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) ListForCustomerPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	media, err := h.service.ListForCustomerPost(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"media": media})
}

func (h *Handler) ListForWorkerPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	media, err := h.service.ListForWorkerPost(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"media": media})
}
