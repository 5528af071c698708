package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPhone = errors.New("invalid phone format")
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// Phone é um value object para números de telefone.
// Aceita 10 a 15 dígitos, com prefixo internacional opcional.
type Phone struct {
	value string
}

// NewPhone cria um novo Phone validado
func NewPhone(phone string) (Phone, error) {
	phone = strings.TrimSpace(phone)
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")

	if !phonePattern.MatchString(phone) {
		return Phone{}, ErrInvalidPhone
	}

	return Phone{value: phone}, nil
}

// String retorna o valor do telefone
func (p Phone) String() string {
	return p.value
}
