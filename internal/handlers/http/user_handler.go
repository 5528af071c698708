package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/domain/repositories"
	"github.com/eventra/eventra-backend/internal/handlers/dto"
	"github.com/eventra/eventra-backend/internal/handlers/middleware"
	"github.com/eventra/eventra-backend/internal/infrastructure/storage"
	"github.com/eventra/eventra-backend/internal/services"
)

// UserHandler lida com requisições HTTP de contas e autenticação
type UserHandler struct {
	userService *services.UserService
	uploads     *storage.UploadStore
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, uploads *storage.UploadStore) *UserHandler {
	return &UserHandler{
		userService: userService,
		uploads:     uploads,
	}
}

// Register cria uma conta de usuário
// @Summary Cadastrar usuário
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/user/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	profileImage, err := h.saveOptionalFile(c, "profileImage")
	if err != nil {
		response := dto.BadRequestErrorResponseI18n(c, "error.upload_failed")
		dto.RespondProblem(c, response)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), services.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Password:     req.Password,
		ProfileImage: profileImage,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Login autentica um usuário e emite o token de sessão
// @Summary Login
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/user/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	token, user, err := h.userService.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// VerifyEmail consome o token de verificação de email
// @Summary Verificar email
// @Tags users
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 410 {object} dto.ErrorResponse
// @Router /api/user/verifyEmail/{token} [get]
func (h *UserHandler) VerifyEmail(c *gin.Context) {
	if err := h.userService.VerifyEmail(c.Request.Context(), c.Param("token")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": dto.T(c, "message.email_verified")})
}

// ForgotPassword inicia o fluxo de redefinição de senha
// @Summary Esqueci minha senha
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/user/forgotPassword [post]
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.userService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	// Mesma resposta para email conhecido e desconhecido
	c.JSON(http.StatusOK, gin.H{"message": dto.T(c, "message.reset_email_sent")})
}

// ResetPassword redefine a senha via token de uso único
// @Summary Redefinir senha
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 410 {object} dto.ErrorResponse
// @Router /api/user/resetPassword/{token} [post]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	err := h.userService.ResetPassword(c.Request.Context(), c.Param("token"), req.Password, req.ConfirmPassword)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": dto.T(c, "message.password_reset")})
}

// Profile retorna o perfil do usuário autenticado, dependente do role
// @Summary Perfil do usuário autenticado
// @Tags users
// @Produce json
// @Param token header string true "Session token"
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/user/profile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c, "")
		dto.RespondProblem(c, response)
		return
	}

	out, err := h.userService.Profile(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(out))
}

// UpdateProfile aplica uma atualização parcial no perfil autenticado
// @Summary Atualizar perfil
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param token header string true "Session token"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/user/updateProfile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c, "")
		dto.RespondProblem(c, response)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	input := services.UpdateProfileInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}

	profileImage, err := h.saveOptionalFile(c, "profileImage")
	if err != nil {
		response := dto.BadRequestErrorResponseI18n(c, "error.upload_failed")
		dto.RespondProblem(c, response)
		return
	}
	if profileImage != "" {
		input.ProfileImage = &profileImage
	}

	updated, err := h.userService.UpdateProfile(c.Request.Context(), user.ID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(updated))
}

// ListUsers lista usuários vivos com paginação (admin)
// @Summary Listar usuários
// @Tags admin
// @Produce json
// @Param token header string true "Session token"
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, pageSize := pagination(c)

	filters := repositories.UserFilters{Page: page, PageSize: pageSize}
	if raw := c.Query("role"); raw != "" {
		role, err := entities.ParseRole(raw)
		if err != nil {
			response := dto.BadRequestErrorResponseI18n(c, "error.invalid_role")
			dto.RespondProblem(c, response)
			return
		}
		filters.Role = &role
	}

	users, err := h.userService.ListUsers(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// DeleteUser faz soft delete de uma conta (admin)
// @Summary Deletar usuário
// @Tags admin
// @Produce json
// @Param token header string true "Session token"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// saveOptionalFile persiste um arquivo do formulário quando presente,
// retornando "" quando o campo não foi enviado.
func (h *UserHandler) saveOptionalFile(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		// Campo ausente não é erro em uploads opcionais
		return "", nil
	}

	return h.uploads.Save(file)
}
