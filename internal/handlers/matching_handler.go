package handlers

import (
	"net/http"

	"jobmatch_backend/internal/auth"
	"jobmatch_backend/internal/logger"
	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MatchingHandler struct {
	*BaseHandler
	matchingService services.MatchingService
}

func NewMatchingHandler(base *BaseHandler, matchingService services.MatchingService) *MatchingHandler {
	return &MatchingHandler{
		BaseHandler:     base,
		matchingService: matchingService,
	}
}

func (h *MatchingHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	employer := requireAuth(r, authMW, auth.PermMatchesRun)
	{
		employer.POST("/ai-match", h.MatchWorkers)
		employer.GET("/matching/jobs/:jobId/workers", h.FindMatchingWorkers)
		employer.GET("/matching/jobs/:jobId/runs", h.ListMatchRuns)
	}
}

// MatchWorkers godoc
// @Summary Подобрать исполнителей под работу
// @Description Ранжирует всех исполнителей и возвращает трех лучших с баллами
// @Tags matching
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MatchRequest true "ID работы"
// @Success 200 {object} dto.MatchResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /ai-match [post]
func (h *MatchingHandler) MatchWorkers(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	// пустое тело - это тоже отсутствующий job_id
	if c.Request.ContentLength == 0 {
		h.HandleServiceError(c, apperrors.ErrJobIDRequired)
		return
	}

	var req dto.MatchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	h.respondWithMatches(c, req.JobID, userID)
}

// FindMatchingWorkers godoc
// @Summary Подобрать исполнителей по ID работы в пути
// @Tags matching
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "ID работы"
// @Success 200 {object} dto.MatchResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /matching/jobs/{jobId}/workers [get]
func (h *MatchingHandler) FindMatchingWorkers(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	h.respondWithMatches(c, c.Param("jobId"), userID)
}

func (h *MatchingHandler) respondWithMatches(c *gin.Context, jobID, userID string) {
	matches, err := h.matchingService.FindMatchingWorkers(h.GetDB(c), jobID, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	logger.CtxDebug(logger.WithJobID(c.Request.Context(), jobID), "Workers ranked", "matches", len(matches))

	c.JSON(http.StatusOK, dto.MatchResponse{
		Matches: matches,
		Total:   len(matches),
	})
}

// ListMatchRuns godoc
// @Summary Журнал подборов по своей работе
// @Tags matching
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "ID работы"
// @Success 200 {object} dto.MatchRunListResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /matching/jobs/{jobId}/runs [get]
func (h *MatchingHandler) ListMatchRuns(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	runs, err := h.matchingService.ListMatchRuns(h.GetDB(c), c.Param("jobId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MatchRunListResponse{
		Runs:  runs,
		Total: len(runs),
	})
}
