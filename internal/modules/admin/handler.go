package admin

import (
	"errors"
	"net/http"
	"strconv"

	"servicehub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	reports *ReportService
}

func NewHandler(service *Service, reports *ReportService) *Handler {
	return &Handler{service: service, reports: reports}
}

// RegisterPublicRoutes exposes the live banner strip.
func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/advertisements", h.ListActiveAdvertisements)
}

// RegisterAdminRoutes attaches the dashboard; the group must already carry
// the admin-only middleware.
func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/users", h.ListUsers)
	admin.GET("/stats", h.Stats)

	ads := admin.Group("/advertisements")
	{
		ads.GET("", h.ListAdvertisements)
		ads.POST("", h.CreateAdvertisement)
		ads.PUT("/:id", h.UpdateAdvertisement)
		ads.DELETE("/:id", h.DeleteAdvertisement)
	}

	reports := admin.Group("/reports")
	{
		reports.GET("/users.csv", h.UsersReport)
		reports.GET("/payments.csv", h.PaymentsReport)
	}
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAdNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Advertisement not found")
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}

func (h *Handler) ListUsers(c *gin.Context) {
	var q UserListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	users, total, err := h.service.ListUsers(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users, "total": total})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) CreateAdvertisement(c *gin.Context) {
	var req CreateAdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	ad, err := h.service.CreateAdvertisement(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"advertisement": ad})
}

func (h *Handler) UpdateAdvertisement(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid advertisement ID")
		return
	}

	var req UpdateAdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	ad, err := h.service.UpdateAdvertisement(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"advertisement": ad})
}

func (h *Handler) DeleteAdvertisement(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid advertisement ID")
		return
	}

	if err := h.service.DeleteAdvertisement(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListAdvertisements(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	ads, total, err := h.service.ListAdvertisements(c.Request.Context(), page, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"advertisements": ads, "total": total})
}

func (h *Handler) ListActiveAdvertisements(c *gin.Context) {
	ads, err := h.service.ListActiveAdvertisements(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"advertisements": ads})
}

func (h *Handler) UsersReport(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="users.csv"`)
	if err := h.reports.WriteUsersCSV(c.Request.Context(), c.Writer); err != nil {
		response.Error(c, http.StatusInternalServerError, "REPORT_ERROR", "Failed to generate report")
	}
}

func (h *Handler) PaymentsReport(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="payments.csv"`)
	if err := h.reports.WritePaymentsCSV(c.Request.Context(), c.Writer); err != nil {
		response.Error(c, http.StatusInternalServerError, "REPORT_ERROR", "Failed to generate report")
	}
}
