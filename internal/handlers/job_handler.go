package handlers

import (
	"net/http"

	"jobmatch_backend/internal/auth"
	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService         services.JobService
	applicationService services.ApplicationService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, applicationService services.ApplicationService) *JobHandler {
	return &JobHandler{
		BaseHandler:        base,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	jobs := r.Group("/jobs")

	// Любой авторизованный пользователь
	anyUser := requireAuth(jobs, authMW, "")
	{
		anyUser.GET("/:jobId", h.GetJob)
	}

	employer := requireAuth(jobs, authMW, auth.PermJobsWrite)
	{
		employer.POST("", h.CreateJob)
		employer.GET("/my", h.GetMyJobs)
		employer.GET("/:jobId/applications", h.GetJobApplications)
	}

	offers := requireAuth(jobs, authMW, auth.PermApplicationsOffer)
	{
		offers.POST("/:jobId/assign", h.AssignWorker)
	}
}

// CreateJob godoc
// @Summary Опубликовать работу
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param job body dto.CreateJobRequest true "Работа"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// GetMyJobs godoc
// @Summary Мои работы
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param status query string false "Фильтр по статусу"
// @Success 200 {object} dto.JobListResponse
// @Router /jobs/my [get]
func (h *JobHandler) GetMyJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, err := h.jobService.GetEmployerJobs(h.GetDB(c), userID, models.JobStatus(query.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary Работа по ID
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "ID работы"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /jobs/{jobId} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(h.GetDB(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// AssignWorker godoc
// @Summary Предложить работу исполнителю
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "ID работы"
// @Param request body dto.AssignWorkerRequest true "Исполнитель"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /jobs/{jobId}/assign [post]
func (h *JobHandler) AssignWorker(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AssignWorkerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.AssignWorker(h.GetDB(c), userID, c.Param("jobId"), req.WorkerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// GetJobApplications godoc
// @Summary Заявки по своей работе
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "ID работы"
// @Success 200 {object} dto.ApplicationListResponse
// @Router /jobs/{jobId}/applications [get]
func (h *JobHandler) GetJobApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.GetJobApplications(h.GetDB(c), userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}
