package approval

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

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	approvals := protected.Group("/approvals")
	{
		approvals.POST("/request", h.Request)
		approvals.GET("/my", h.MyRequests)
	}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	approvals := admin.Group("/approvals")
	{
		approvals.GET("/pending", h.PendingQueue)
		approvals.POST("/:id/review", h.Review)
	}
}

func principalFromContext(c *gin.Context) authz.Principal {
	return authz.Principal{
		UserID: c.GetInt64("user_id"),
		Role:   domain.UserRole(c.GetString("role")),
	}
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Approval request not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You may not act on approval requests")
	case errors.Is(err, ErrPendingExists):
		response.Error(c, http.StatusBadRequest, "PENDING_EXISTS", "You already have a pending approval request")
	case errors.Is(err, ErrAlreadyDecided):
		response.Error(c, http.StatusBadRequest, "ALREADY_REVIEWED", "Approval request has already been reviewed")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}

func (h *Handler) Request(c *gin.Context) {
	a, err := h.service.Request(c.Request.Context(), principalFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"approval": a})
}

func (h *Handler) MyRequests(c *gin.Context) {
	approvals, err := h.service.MyRequests(c.Request.Context(), principalFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"approvals": approvals})
}

func (h *Handler) PendingQueue(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	approvals, total, err := h.service.PendingQueue(c.Request.Context(), principalFromContext(c), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"approvals": approvals, "total": total})
}

func (h *Handler) Review(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid approval ID")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Action must be approve or reject")
		return
	}

	a, err := h.service.Review(c.Request.Context(), principalFromContext(c), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"approval": a})
}
