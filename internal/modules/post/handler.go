package post

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
	v1.GET("/customer-posts", h.ListCustomerPosts)
	v1.GET("/worker-posts", h.ListWorkerPosts)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	cp := protected.Group("/customer-posts")
	{
		cp.POST("", h.CreateCustomerPost)
		cp.GET("/my", h.ListMyCustomerPosts)
		cp.GET("/:id", h.GetCustomerPost)
		cp.PUT("/:id", h.UpdateCustomerPost)
		cp.DELETE("/:id", h.DeleteCustomerPost)
	}

	wp := protected.Group("/worker-posts")
	{
		wp.POST("", h.CreateWorkerPost)
		wp.GET("/my", h.ListMyWorkerPosts)
		wp.GET("/:id", h.GetWorkerPost)
		wp.PUT("/:id", h.UpdateWorkerPost)
		wp.DELETE("/:id", h.DeleteWorkerPost)
	}
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
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return 0, false
	}
	return id, true
}

// writeServiceError maps module sentinels onto the response envelope.
// NotFound is reported before Forbidden by construction of the service.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Post not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You may not act on this post")
	case errors.Is(err, ErrCategoryNotFound):
		response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", "Unknown category")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid post data")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}

// -------------------- Customer posts --------------------

func (h *Handler) CreateCustomerPost(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	post, err := h.service.CreateCustomerPost(c.Request.Context(), principalFromContext(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"post": post})
}

func (h *Handler) GetCustomerPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	post, err := h.service.GetCustomerPost(c.Request.Context(), principalFromContext(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"post": post})
}

func (h *Handler) UpdateCustomerPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	post, err := h.service.UpdateCustomerPost(c.Request.Context(), principalFromContext(c), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"post": post})
}

func (h *Handler) DeleteCustomerPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteCustomerPost(c.Request.Context(), principalFromContext(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListCustomerPosts(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	posts, total, err := h.service.ListCustomerPosts(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"posts": posts, "total": total})
}

func (h *Handler) ListMyCustomerPosts(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	posts, total, err := h.service.ListMyCustomerPosts(c.Request.Context(), principalFromContext(c), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"posts": posts, "total": total})
}

// -------------------- Worker posts --------------------

func (h *Handler) CreateWorkerPost(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	post, err := h.service.CreateWorkerPost(c.Request.Context(), principalFromContext(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"post": post})
}

func (h *Handler) GetWorkerPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	post, err := h.service.GetWorkerPost(c.Request.Context(), principalFromContext(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"post": post})
}

func (h *Handler) UpdateWorkerPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	post, err := h.service.UpdateWorkerPost(c.Request.Context(), principalFromContext(c), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"post": post})
}

func (h *Handler) DeleteWorkerPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteWorkerPost(c.Request.Context(), principalFromContext(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListWorkerPosts(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	posts, total, err := h.service.ListWorkerPosts(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"posts": posts, "total": total})
}

func (h *Handler) ListMyWorkerPosts(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	posts, total, err := h.service.ListMyWorkerPosts(c.Request.Context(), principalFromContext(c), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"posts": posts, "total": total})
}
