package entities

import "errors"

// Role representa o papel de um usuário na plataforma
type Role string

const (
	RoleUser         Role = "user"
	RoleAdmin        Role = "admin"
	RoleEventManager Role = "eventManager"
)

var ErrInvalidRole = errors.New("invalid role")

// ParseRole converte uma string em Role, rejeitando valores desconhecidos
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleEventManager:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// IsValid verifica se o role é um dos valores conhecidos
func (r Role) IsValid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Permission representa uma permissão específica
type Permission string

const (
	// User permissions
	PermissionUserRead   Permission = "users.read"
	PermissionUserList   Permission = "users.list"
	PermissionUserDelete Permission = "users.delete"

	// Category permissions
	PermissionCategoryWrite Permission = "categories.write"

	// Review permissions
	PermissionReviewWrite Permission = "reviews.write"

	// Event-manager profile permissions
	PermissionManagerProfileWrite Permission = "managers.profile.write"

	// Contact query permissions
	PermissionQueryRead Permission = "queries.read"

	// Payment permissions
	PermissionPaymentWrite Permission = "payments.write"

	// Admin notification stream
	PermissionNotifySubscribe Permission = "notifications.subscribe"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionUserRead,
		PermissionUserList,
		PermissionUserDelete,
		PermissionCategoryWrite,
		PermissionQueryRead,
		PermissionNotifySubscribe,
	},
	RoleUser: {
		PermissionUserRead,
		PermissionReviewWrite,
		PermissionPaymentWrite,
	},
	RoleEventManager: {
		PermissionUserRead,
		PermissionManagerProfileWrite,
		PermissionPaymentWrite,
	},
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	for _, p := range RolePermissions[r] {
		if p == permission {
			return true
		}
	}
	return false
}
