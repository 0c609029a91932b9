package handlers

import (
	"net/http"

	"jobmatch_backend/internal/auth"
	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	worker := requireAuth(r.Group("/applications"), authMW, auth.PermApplicationsRespond)
	{
		worker.GET("/my", h.GetMyApplications)
		worker.PUT("/:applicationId/status", h.RespondToApplication)
	}
}

// GetMyApplications godoc
// @Summary Предложения работы исполнителю
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApplicationListResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /applications/my [get]
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.GetWorkerApplications(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

// RespondToApplication godoc
// @Summary Принять или отклонить предложение
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param applicationId path string true "ID заявки"
// @Param request body dto.UpdateApplicationStatusRequest true "Решение"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /applications/{applicationId}/status [put]
func (h *ApplicationHandler) RespondToApplication(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.RespondToApplication(h.GetDB(c), userID, c.Param("applicationId"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}
