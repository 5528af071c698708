package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventra/eventra-backend/internal/handlers/dto"
	"github.com/eventra/eventra-backend/internal/handlers/middleware"
	"github.com/eventra/eventra-backend/internal/infrastructure/storage"
	"github.com/eventra/eventra-backend/internal/services"
)

// EventManagerHandler lida com requisições HTTP de perfis profissionais
type EventManagerHandler struct {
	managerService *services.EventManagerService
	uploads        *storage.UploadStore
}

// NewEventManagerHandler cria um novo EventManagerHandler
func NewEventManagerHandler(managerService *services.EventManagerService, uploads *storage.UploadStore) *EventManagerHandler {
	return &EventManagerHandler{
		managerService: managerService,
		uploads:        uploads,
	}
}

// Register cria a conta eventManager com o perfil profissional
// @Summary Cadastrar event manager
// @Tags event-managers
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/eventManager/createEventManager [post]
func (h *EventManagerHandler) Register(c *gin.Context) {
	var req dto.RegisterEventManagerRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	profileImage, workImages, err := h.saveFiles(c)
	if err != nil {
		response := dto.BadRequestErrorResponseI18n(c, "error.upload_failed")
		dto.RespondProblem(c, response)
		return
	}

	user, _, err := h.managerService.Register(c.Request.Context(), services.RegisterEventManagerInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Password:     req.Password,
		ProfileImage: profileImage,
		Gender:       req.Gender,
		Age:          req.Age,
		CategoryIDs:  req.CategoryIDs,
		Services:     req.Services,
		Description:  req.Description,
		WorkImages:   workImages,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// FullDetails retorna o perfil público agregado de um event manager
// @Summary Detalhes completos de um event manager
// @Tags event-managers
// @Produce json
// @Success 200 {object} dto.EventManagerDetailsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/eventManager/fullDetails/{id} [get]
func (h *EventManagerHandler) FullDetails(c *gin.Context) {
	full, err := h.managerService.FullDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventManagerDetailsResponse(full))
}

// UpdateProfile aplica uma atualização parcial no perfil profissional
// @Summary Atualizar perfil profissional
// @Tags event-managers
// @Accept multipart/form-data
// @Produce json
// @Param token header string true "Session token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/eventManager/updateProfile [put]
func (h *EventManagerHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c, "")
		dto.RespondProblem(c, response)
		return
	}

	var req dto.UpdateEventManagerProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	input := services.UpdateManagerProfileInput{
		Gender:      req.Gender,
		Age:         req.Age,
		CategoryIDs: req.CategoryIDs,
		Services:    req.Services,
		Description: req.Description,
	}

	_, workImages, err := h.saveFiles(c)
	if err != nil {
		response := dto.BadRequestErrorResponseI18n(c, "error.upload_failed")
		dto.RespondProblem(c, response)
		return
	}
	if len(workImages) > 0 {
		input.WorkImages = workImages
	}

	if _, err := h.managerService.UpdateProfile(c.Request.Context(), user.ID, input); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": dto.T(c, "message.profile_updated")})
}

// List retorna as projeções públicas paginadas
// @Summary Listar event managers
// @Tags event-managers
// @Produce json
// @Success 200 {array} dto.EventManagerSummaryResponse
// @Router /api/eventManager/list [get]
func (h *EventManagerHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)

	summaries, err := h.managerService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventManagerSummaryResponses(summaries))
}

// saveFiles persiste a imagem de perfil e as imagens de trabalho do
// formulário multipart, quando presentes.
func (h *EventManagerHandler) saveFiles(c *gin.Context) (string, []string, error) {
	var profileImage string
	if file, err := c.FormFile("profileImage"); err == nil {
		url, err := h.uploads.Save(file)
		if err != nil {
			return "", nil, err
		}
		profileImage = url
	}

	form, err := c.MultipartForm()
	if err != nil {
		return profileImage, nil, nil
	}

	files := form.File["workImages"]
	workImages := make([]string, 0, len(files))
	for _, file := range files {
		url, err := h.uploads.Save(file)
		if err != nil {
			return "", nil, err
		}
		workImages = append(workImages, url)
	}

	return profileImage, workImages, nil
}
