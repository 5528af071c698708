package i18n

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"en.json": &fstest.MapFile{
			Data: []byte(`{"welcome": "Welcome", "greeting": "Hello, {{.Name}}", "only_en": "English only"}`),
		},
		"pt-BR.json": &fstest.MapFile{
			Data: []byte(`{"welcome": "Bem-vindo", "greeting": "Olá, {{.Name}}"}`),
		},
	}
}

func TestNewService(t *testing.T) {
	t.Run("carrega todos os idiomas encontrados", func(t *testing.T) {
		service, err := NewService(testFS(), "en")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		langs := service.GetSupportedLanguages()
		if len(langs) != 2 {
			t.Errorf("esperado 2 idiomas, obtido %d: %v", len(langs), langs)
		}
	})

	t.Run("falha sem arquivos de tradução", func(t *testing.T) {
		if _, err := NewService(fstest.MapFS{}, "en"); err == nil {
			t.Error("esperado erro sem arquivos de locale")
		}
	})

	t.Run("falha quando o idioma padrão não existe", func(t *testing.T) {
		if _, err := NewService(testFS(), "es"); err == nil {
			t.Error("esperado erro com idioma padrão ausente")
		}
	})

	t.Run("falha com JSON inválido", func(t *testing.T) {
		fsys := fstest.MapFS{
			"en.json": &fstest.MapFile{Data: []byte(`{broken`)},
		}
		if _, err := NewService(fsys, "en"); err == nil {
			t.Error("esperado erro com JSON inválido")
		}
	})
}

func TestServiceT(t *testing.T) {
	service, err := NewService(testFS(), "en")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	t.Run("traduz no idioma solicitado", func(t *testing.T) {
		if got := service.T("pt-BR", "welcome"); got != "Bem-vindo" {
			t.Errorf("esperado Bem-vindo, obtido %q", got)
		}
	})

	t.Run("interpola parâmetros", func(t *testing.T) {
		got := service.T("pt-BR", "greeting", map[string]interface{}{"Name": "Maria"})
		if got != "Olá, Maria" {
			t.Errorf("esperado Olá, Maria, obtido %q", got)
		}
	})

	t.Run("cai para o idioma padrão quando a chave falta", func(t *testing.T) {
		if got := service.T("pt-BR", "only_en"); got != "English only" {
			t.Errorf("esperado fallback inglês, obtido %q", got)
		}
	})

	t.Run("retorna a chave quando ninguém a conhece", func(t *testing.T) {
		if got := service.T("en", "missing.key"); got != "missing.key" {
			t.Errorf("esperado a própria chave, obtido %q", got)
		}
	})

	t.Run("idioma desconhecido usa o padrão", func(t *testing.T) {
		if got := service.T("fr", "welcome"); got != "Welcome" {
			t.Errorf("esperado Welcome, obtido %q", got)
		}
	})
}

func TestNewEmbeddedService(t *testing.T) {
	service, err := NewEmbeddedService("en")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	t.Run("traduções embutidas cobrem os dois idiomas", func(t *testing.T) {
		if !service.IsLanguageSupported("en") || !service.IsLanguageSupported("pt-BR") {
			t.Errorf("idiomas embutidos incompletos: %v", service.GetSupportedLanguages())
		}
	})

	t.Run("interpolação de recurso no not found", func(t *testing.T) {
		got := service.T("en", "error.not_found.detail", map[string]interface{}{"Resource": "User"})
		if got != "User not found" {
			t.Errorf("esperado User not found, obtido %q", got)
		}
	})
}
