package entities

import "testing"

func TestParseRole(t *testing.T) {
	t.Run("aceita os três roles conhecidos", func(t *testing.T) {
		for _, raw := range []string{"user", "admin", "eventManager"} {
			role, err := ParseRole(raw)
			if err != nil {
				t.Errorf("role %q: erro inesperado %v", raw, err)
			}
			if string(role) != raw {
				t.Errorf("role %q: obtido %q", raw, role)
			}
		}
	})

	t.Run("rejeita valores desconhecidos", func(t *testing.T) {
		for _, raw := range []string{"", "User", "ADMIN", "manager", "event_manager"} {
			if _, err := ParseRole(raw); err != ErrInvalidRole {
				t.Errorf("role %q: esperado ErrInvalidRole, obtido %v", raw, err)
			}
		}
	})
}

func TestRolePermissions(t *testing.T) {
	t.Run("admin administra categorias e mensagens", func(t *testing.T) {
		if !RoleAdmin.HasPermission(PermissionCategoryWrite) {
			t.Error("admin deveria escrever categorias")
		}
		if !RoleAdmin.HasPermission(PermissionQueryRead) {
			t.Error("admin deveria ler mensagens de contato")
		}
		if !RoleAdmin.HasPermission(PermissionUserDelete) {
			t.Error("admin deveria deletar usuários")
		}
		if !RoleAdmin.HasPermission(PermissionNotifySubscribe) {
			t.Error("admin deveria assinar notificações")
		}
	})

	t.Run("admin não avalia nem paga", func(t *testing.T) {
		if RoleAdmin.HasPermission(PermissionReviewWrite) {
			t.Error("admin não deveria escrever avaliações")
		}
		if RoleAdmin.HasPermission(PermissionPaymentWrite) {
			t.Error("admin não deveria iniciar pagamentos")
		}
	})

	t.Run("usuário comum avalia e paga, mas não administra", func(t *testing.T) {
		if !RoleUser.HasPermission(PermissionReviewWrite) {
			t.Error("usuário deveria escrever avaliações")
		}
		if !RoleUser.HasPermission(PermissionPaymentWrite) {
			t.Error("usuário deveria iniciar pagamentos")
		}
		if RoleUser.HasPermission(PermissionCategoryWrite) {
			t.Error("usuário não deveria escrever categorias")
		}
		if RoleUser.HasPermission(PermissionUserList) {
			t.Error("usuário não deveria listar contas")
		}
	})

	t.Run("event manager edita o próprio perfil profissional", func(t *testing.T) {
		if !RoleEventManager.HasPermission(PermissionManagerProfileWrite) {
			t.Error("event manager deveria editar o perfil profissional")
		}
		if RoleUser.HasPermission(PermissionManagerProfileWrite) {
			t.Error("usuário comum não deveria editar perfil profissional")
		}
	})

	t.Run("role desconhecido não tem permissões", func(t *testing.T) {
		if Role("ghost").HasPermission(PermissionUserRead) {
			t.Error("role desconhecido não deveria ter permissões")
		}
	})
}
