package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/domain/repositories"
	"github.com/eventra/eventra-backend/internal/infrastructure/auth"
	"github.com/eventra/eventra-backend/internal/infrastructure/i18n"
)

const (
	// TokenHeader é o header próprio onde o cliente envia o token de sessão
	TokenHeader = "token"
	// CurrentUserContextKey é a chave do usuário autenticado no contexto do Gin
	CurrentUserContextKey = "current_user"
)

// AuthMiddleware autentica requisições pelo token de sessão envelopado
type AuthMiddleware struct {
	tokens *auth.TokenService
	users  repositories.UserRepository
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(tokens *auth.TokenService, users repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
	}
}

// Authenticate valida o token e carrega o usuário vivo no contexto.
// Token ausente, inválido, expirado ou de conta deletada resulta em 401.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			abortProblem(c, http.StatusUnauthorized, "/problems/unauthorized",
				"error.unauthorized.title", "error.missing_token")
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			abortProblem(c, http.StatusUnauthorized, "/problems/unauthorized",
				"error.unauthorized.title", "error.invalid_token")
			return
		}

		// Buscas já excluem soft-deleted: conta deletada vira 401
		user, err := m.users.FindByID(c.Request.Context(), claims.Subject)
		if err != nil {
			abortProblem(c, http.StatusInternalServerError, "/problems/internal-error",
				"error.internal.title", "error.internal.detail")
			return
		}
		if user == nil {
			abortProblem(c, http.StatusUnauthorized, "/problems/unauthorized",
				"error.unauthorized.title", "error.invalid_token")
			return
		}

		c.Set(CurrentUserContextKey, user)
		c.Next()
	}
}

// RequirePermission bloqueia a requisição quando o role do usuário
// autenticado não concede a permissão exigida.
func RequirePermission(permission entities.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortProblem(c, http.StatusUnauthorized, "/problems/unauthorized",
				"error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		if !user.HasPermission(permission) {
			abortProblem(c, http.StatusForbidden, "/problems/forbidden",
				"error.forbidden.title", "error.forbidden.detail")
			return
		}

		c.Next()
	}
}

// CurrentUser retorna o usuário autenticado da requisição
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(CurrentUserContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*entities.User)
	return user, ok
}

// abortProblem encerra a requisição com uma resposta RFC 7807.
// Duplicado do pacote dto de propósito: dto depende deste pacote pelas
// chaves de contexto, então o middleware monta a própria resposta.
func abortProblem(c *gin.Context, status int, problemType, titleKey, detailKey string) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	prob := problems.Problem{
		Type:     baseURL + problemType,
		Title:    translate(c, titleKey),
		Status:   status,
		Detail:   translate(c, detailKey),
		Instance: c.Request.URL.Path,
	}

	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(status, prob)
}

// translate busca a tradução no serviço i18n do contexto, caindo para a
// própria chave quando o middleware de idioma não rodou
func translate(c *gin.Context, key string) string {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	lang, _ := c.Get(LanguageContextKey)
	langStr, _ := lang.(string)
	if langStr == "" {
		langStr = service.GetDefaultLanguage()
	}

	return service.T(langStr, key)
}
