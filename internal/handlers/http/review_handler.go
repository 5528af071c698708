package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventra/eventra-backend/internal/handlers/dto"
	"github.com/eventra/eventra-backend/internal/handlers/middleware"
	"github.com/eventra/eventra-backend/internal/services"
)

// ReviewHandler lida com requisições HTTP de avaliações
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler cria um novo ReviewHandler
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// AddReview cria uma avaliação sobre um event manager
// @Summary Avaliar event manager
// @Tags reviews
// @Accept json
// @Produce json
// @Param token header string true "Session token"
// @Success 201 {object} dto.ReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/review/addReview/{eventManagerId} [post]
func (h *ReviewHandler) AddReview(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c, "")
		dto.RespondProblem(c, response)
		return
	}

	var req dto.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	review, err := h.reviewService.AddReview(
		c.Request.Context(),
		user.ID,
		c.Param("eventManagerId"),
		req.Rating,
		req.Comment,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

// TopFiveStar retorna a vitrine de avaliações nota 5
// @Summary Melhores avaliações
// @Tags reviews
// @Produce json
// @Success 200 {array} dto.FiveStarReviewResponse
// @Router /api/review/topFiveStarReviews [get]
func (h *ReviewHandler) TopFiveStar(c *gin.Context) {
	reviews, err := h.reviewService.TopFiveStar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFiveStarReviewResponses(reviews))
}

// ByEventManager lista as avaliações vivas de um event manager
// @Summary Avaliações de um event manager
// @Tags reviews
// @Produce json
// @Success 200 {array} dto.ReviewEntryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/review/byEventManager/{eventManagerId} [get]
func (h *ReviewHandler) ByEventManager(c *gin.Context) {
	entries, err := h.reviewService.ByEventManager(c.Request.Context(), c.Param("eventManagerId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewEntryResponses(entries))
}
