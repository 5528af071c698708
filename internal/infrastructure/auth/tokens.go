package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// RandomHexToken gera um token hex criptograficamente aleatório de n bytes
// (2n caracteres). Usado nos fluxos de verificação de email e reset de senha.
func RandomHexToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// NumericOTP gera um código numérico aleatório de n dígitos
func NumericOTP(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}

	otp := make([]byte, n)
	for i := 0; i < n; i++ {
		otp[i] = '0' + (buf[i] % 10)
	}
	return string(otp), nil
}
