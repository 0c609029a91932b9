package handlers

import (
	"net/http"

	"jobmatch_backend/internal/auth"
	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type WorkerHandler struct {
	*BaseHandler
	workerService services.WorkerService
	reviewService services.ReviewService
}

func NewWorkerHandler(base *BaseHandler, workerService services.WorkerService, reviewService services.ReviewService) *WorkerHandler {
	return &WorkerHandler{
		BaseHandler:   base,
		workerService: workerService,
		reviewService: reviewService,
	}
}

func (h *WorkerHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	workers := r.Group("/workers")

	anyUser := requireAuth(workers, authMW, "")
	{
		anyUser.GET("", h.ListWorkers)
		anyUser.GET("/:workerId", h.GetWorker)
		anyUser.GET("/:workerId/reviews", h.GetWorkerReviews)
	}

	worker := requireAuth(workers, authMW, auth.PermWorkerRegister)
	{
		worker.POST("", h.RegisterWorker)
	}
}

// RegisterWorker godoc
// @Summary Зарегистрировать профиль исполнителя
// @Tags workers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param worker body dto.RegisterWorkerRequest true "Профиль"
// @Success 201 {object} dto.WorkerResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /workers [post]
func (h *WorkerHandler) RegisterWorker(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RegisterWorkerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	worker, err := h.workerService.RegisterWorker(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, worker)
}

// ListWorkers godoc
// @Summary Все исполнители с именами и оценками
// @Tags workers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.WorkerListResponse
// @Router /workers [get]
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	workers, err := h.workerService.ListWorkers(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workers)
}

// GetWorker godoc
// @Summary Исполнитель по ID
// @Tags workers
// @Produce json
// @Security BearerAuth
// @Param workerId path string true "ID исполнителя"
// @Success 200 {object} dto.WorkerResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /workers/{workerId} [get]
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	worker, err := h.workerService.GetWorker(h.GetDB(c), c.Param("workerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, worker)
}

// GetWorkerReviews godoc
// @Summary Отзывы об исполнителе
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param workerId path string true "ID исполнителя"
// @Success 200 {object} dto.ReviewListResponse
// @Router /workers/{workerId}/reviews [get]
func (h *WorkerHandler) GetWorkerReviews(c *gin.Context) {
	reviews, err := h.reviewService.GetWorkerReviews(h.GetDB(c), c.Param("workerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}
