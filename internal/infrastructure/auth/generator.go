package auth

import (
	"github.com/eventra/eventra-backend/internal/domain/ports"
)

// RandomGenerator implementa ports.TokenGenerator com crypto/rand
type RandomGenerator struct{}

// NewRandomGenerator cria um RandomGenerator
func NewRandomGenerator() ports.TokenGenerator {
	return &RandomGenerator{}
}

func (RandomGenerator) HexToken(nBytes int) (string, error) {
	return RandomHexToken(nBytes)
}

func (RandomGenerator) NumericOTP(digits int) (string, error) {
	return NumericOTP(digits)
}
