package http

import (
	errs "errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/domain/errors"
	"github.com/eventra/eventra-backend/internal/domain/valueobjects"
	"github.com/eventra/eventra-backend/internal/handlers/dto"
)

// respondError mapeia erros de domínio para respostas RFC 7807.
// Handlers delegam para cá qualquer erro vindo dos services.
func respondError(c *gin.Context, err error) {
	var response dto.ErrorResponse

	switch {
	case errs.Is(err, errors.ErrUserNotFound):
		response = dto.NotFoundErrorResponseI18n(c, "User")
	case errs.Is(err, errors.ErrEventManagerNotFound),
		errs.Is(err, errors.ErrReviewTargetNotFound):
		response = dto.NotFoundErrorResponseI18n(c, "Event manager")
	case errs.Is(err, errors.ErrCategoryNotFound):
		response = dto.NotFoundErrorResponseI18n(c, "Category")
	case errs.Is(err, errors.ErrQueryNotFound):
		response = dto.NotFoundErrorResponseI18n(c, "Query")

	case errs.Is(err, errors.ErrEmailAlreadyExists):
		response = dto.ConflictErrorResponseI18n(c, "error.email_already_exists")
	case errs.Is(err, errors.ErrCategoryExists):
		response = dto.ConflictErrorResponseI18n(c, "error.category_already_exists")

	case errs.Is(err, errors.ErrInvalidCredentials):
		response = dto.UnauthorizedErrorResponseI18n(c, "error.invalid_credentials")
	case errs.Is(err, errors.ErrUnauthorized):
		response = dto.UnauthorizedErrorResponseI18n(c, "")
	case errs.Is(err, errors.ErrRoleMismatch),
		errs.Is(err, errors.ErrForbidden):
		response = dto.ForbiddenErrorResponseI18n(c)

	case errs.Is(err, errors.ErrTokenExpired):
		response = dto.GoneErrorResponseI18n(c, "error.token_expired")
	case errs.Is(err, errors.ErrInvalidToken):
		response = dto.BadRequestErrorResponseI18n(c, "error.invalid_token")
	case errs.Is(err, errors.ErrPasswordMismatch):
		response = dto.BadRequestErrorResponseI18n(c, "error.password_mismatch")
	case errs.Is(err, errors.ErrInvalidID):
		response = dto.BadRequestErrorResponseI18n(c, "error.invalid_id")
	case errs.Is(err, entities.ErrRatingOutOfRange):
		response = dto.BadRequestErrorResponseI18n(c, "error.rating_out_of_range")
	case errs.Is(err, valueobjects.ErrInvalidEmail):
		response = dto.BadRequestErrorResponseI18n(c, "error.invalid_email")
	case errs.Is(err, valueobjects.ErrInvalidPhone):
		response = dto.BadRequestErrorResponseI18n(c, "error.invalid_phone")

	case errs.Is(err, errors.ErrPaymentFailed):
		response = dto.PaymentErrorResponseI18n(c)

	default:
		response = dto.InternalErrorResponseI18n(c)
	}

	dto.RespondProblem(c, response)
}

// bindError responde 400 com os erros de validação do binding
func bindError(c *gin.Context, err error) {
	response := dto.ValidationErrorResponseI18n(c, dto.MapValidationErrors(err))
	dto.RespondProblem(c, response)
}

// pagination extrai page e page_size da query string com defaults sãos
func pagination(c *gin.Context) (int, int) {
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "page_size", 20)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	return page, pageSize
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
