package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventra/eventra-backend/internal/handlers/dto"
	"github.com/eventra/eventra-backend/internal/services"
)

// CategoryHandler lida com requisições HTTP de categorias
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler cria um novo CategoryHandler
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// Create cria uma categoria (admin)
// @Summary Criar categoria
// @Tags categories
// @Accept json
// @Produce json
// @Param token header string true "Session token"
// @Success 201 {object} dto.CategoryResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/category [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// Update atualiza parcialmente uma categoria (admin)
// @Summary Atualizar categoria
// @Tags categories
// @Accept json
// @Produce json
// @Param token header string true "Session token"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/category/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), c.Param("id"), services.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// Delete faz soft delete de uma categoria (admin)
// @Summary Deletar categoria
// @Tags categories
// @Produce json
// @Param token header string true "Session token"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/category/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categoryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List lista as categorias vivas (público)
// @Summary Listar categorias
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Router /api/category/list [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// EventManagersByCategory lista event managers de uma categoria (público)
// @Summary Event managers por categoria
// @Tags categories
// @Produce json
// @Success 200 {array} dto.EventManagerSummaryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/category/categoryWiseEventManagers/{categoryId} [get]
func (h *CategoryHandler) EventManagersByCategory(c *gin.Context) {
	summaries, err := h.categoryService.EventManagersByCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventManagerSummaryResponses(summaries))
}
