package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventra/eventra-backend/internal/handlers/dto"
	"github.com/eventra/eventra-backend/internal/services"
)

// QueryHandler lida com requisições HTTP de mensagens de contato
type QueryHandler struct {
	queryService *services.QueryService
}

// NewQueryHandler cria um novo QueryHandler
func NewQueryHandler(queryService *services.QueryService) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
	}
}

// AddQuery registra uma mensagem do formulário público de contato
// @Summary Enviar mensagem de contato
// @Tags queries
// @Accept json
// @Produce json
// @Success 201 {object} dto.QueryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/query/addQuery [post]
func (h *QueryHandler) AddQuery(c *gin.Context) {
	var req dto.AddQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	query, err := h.queryService.Create(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToQueryResponse(query))
}

// List lista as mensagens de contato (admin)
// @Summary Listar mensagens de contato
// @Tags admin
// @Produce json
// @Param token header string true "Session token"
// @Success 200 {array} dto.QueryResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/admin/queries [get]
func (h *QueryHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)

	queries, err := h.queryService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQueryResponses(queries))
}
