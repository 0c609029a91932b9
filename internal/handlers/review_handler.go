package handlers

import (
	"net/http"

	"jobmatch_backend/internal/auth"
	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

// RegisterRoutes - чтение отзывов живет в WorkerHandler (/workers/:workerId/reviews)
func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	employer := requireAuth(r.Group("/reviews"), authMW, auth.PermReviewsWrite)
	{
		employer.POST("", h.CreateReview)
	}
}

// CreateReview godoc
// @Summary Оставить отзыв исполнителю
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body dto.CreateReviewRequest true "Отзыв"
// @Success 201 {object} dto.ReviewResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}
