package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

var (
	ErrCipherKeySize = errors.New("cipher key must be 32 bytes")
	ErrCipherPayload = errors.New("malformed cipher payload")
)

// TokenCipher envelopa o JWT assinado em AES-256-CBC antes de entregá-lo ao
// cliente. IV aleatório é prefixado ao ciphertext; o resultado é base64.
type TokenCipher struct {
	key []byte
}

// NewTokenCipher cria um TokenCipher a partir de uma chave de 32 bytes
func NewTokenCipher(key string) (*TokenCipher, error) {
	if len(key) != 32 {
		return nil, ErrCipherKeySize
	}
	return &TokenCipher{key: []byte(key)}, nil
}

// Wrap cifra o token assinado e retorna base64(iv || ciphertext)
func (c *TokenCipher) Wrap(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)

	out := make([]byte, aes.BlockSize+len(padded))
	iv := out[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(out[aes.BlockSize:], padded)

	return base64.RawURLEncoding.EncodeToString(out), nil
}

// Unwrap decifra um envelope produzido por Wrap
func (c *TokenCipher) Unwrap(wrapped string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(wrapped)
	if err != nil {
		return "", ErrCipherPayload
	}

	if len(raw) < 2*aes.BlockSize || len(raw)%aes.BlockSize != 0 {
		return "", ErrCipherPayload
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	iv := raw[:aes.BlockSize]
	ciphertext := raw[aes.BlockSize:]

	plaintext := make([]byte, len(ciphertext))
	mode := cipher.NewCBCDecrypter(block, iv)
	mode.CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", err
	}

	return string(unpadded), nil
}

// pkcs7Pad aplica padding PKCS#7
func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+padding)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padding)
	}
	return out
}

// pkcs7Unpad remove e valida padding PKCS#7
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrCipherPayload
	}

	padding := int(data[len(data)-1])
	if padding < 1 || padding > blockSize {
		return nil, ErrCipherPayload
	}

	for i := len(data) - padding; i < len(data); i++ {
		if int(data[i]) != padding {
			return nil, ErrCipherPayload
		}
	}

	return data[:len(data)-padding], nil
}
