package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"servicehub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	favs := protected.Group("/favorites")
	{
		favs.GET("/customer-posts", h.ListCustomerPosts)
		favs.POST("/customer-posts/:id", h.AddCustomerPost)
		favs.DELETE("/customer-posts/:id", h.RemoveCustomerPost)

		favs.GET("/worker-posts", h.ListWorkerPosts)
		favs.POST("/worker-posts/:id", h.AddWorkerPost)
		favs.DELETE("/worker-posts/:id", h.RemoveWorkerPost)
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPostNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Post not found")
	case errors.Is(err, ErrDuplicate):
		response.Error(c, http.StatusBadRequest, "ALREADY_FAVORITE", "Post is already in favorites")
	case errors.Is(err, ErrNotFavorite):
		response.Error(c, http.StatusNotFound, "NOT_FAVORITE", "Post is not in favorites")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}

func (h *Handler) AddCustomerPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	fav, err := h.service.AddCustomerPost(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"favorite": fav})
}

func (h *Handler) RemoveCustomerPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.RemoveCustomerPost(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

func (h *Handler) ListCustomerPosts(c *gin.Context) {
	page, limit := pagination(c)
	favs, total, err := h.service.ListCustomerPosts(c.Request.Context(), c.GetInt64("user_id"), page, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"favorites": favs, "total": total})
}

func (h *Handler) AddWorkerPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	fav, err := h.service.AddWorkerPost(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"favorite": fav})
}

func (h *Handler) RemoveWorkerPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.RemoveWorkerPost(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

func (h *Handler) ListWorkerPosts(c *gin.Context) {
	page, limit := pagination(c)
	favs, total, err := h.service.ListWorkerPosts(c.Request.Context(), c.GetInt64("user_id"), page, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"favorites": favs, "total": total})
}
