package auth

import (
	"github.com/eventra/eventra-backend/internal/domain/ports"
)

// TokenService combina assinatura JWT e envelope simétrico: o cliente recebe
// apenas o envelope, nunca o JWT cru. Implementa ports.TokenIssuer.
type TokenService struct {
	jwt    *JWTManager
	cipher *TokenCipher
}

// NewTokenService cria um TokenService
func NewTokenService(jwt *JWTManager, cipher *TokenCipher) *TokenService {
	return &TokenService{jwt: jwt, cipher: cipher}
}

var _ ports.TokenIssuer = (*TokenService)(nil)

// Issue assina e envelopa um token de sessão
func (s *TokenService) Issue(userID, role, email string) (string, error) {
	signed, err := s.jwt.Generate(userID, role, email)
	if err != nil {
		return "", err
	}
	return s.cipher.Wrap(signed)
}

// Verify desfaz o envelope e valida o JWT interno
func (s *TokenService) Verify(wrapped string) (*Claims, error) {
	signed, err := s.cipher.Unwrap(wrapped)
	if err != nil {
		return nil, ErrInvalidJWT
	}
	return s.jwt.Validate(signed)
}
