package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// unsafeChars remove tudo que não for seguro em um nome de arquivo
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._\-]`)

// UploadStore persiste arquivos enviados em um diretório local.
// Nomes recebem um prefixo UUID, então uploads concorrentes com o mesmo
// nome original nunca colidem.
type UploadStore struct {
	dir       string
	publicURL string
}

// NewUploadStore cria o diretório de uploads se necessário
func NewUploadStore(dir, publicURL string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &UploadStore{dir: dir, publicURL: strings.TrimSuffix(publicURL, "/")}, nil
}

// Dir retorna o diretório local servido estaticamente
func (s *UploadStore) Dir() string {
	return s.dir
}

// Save persiste o arquivo e retorna o caminho público para referência
func (s *UploadStore) Save(file *multipart.FileHeader) (string, error) {
	name := SafeFileName(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dstPath := filepath.Join(s.dir, name)
	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return s.publicURL + "/" + name, nil
}

// SafeFileName prefixa o nome original sanitizado com um UUID
func SafeFileName(original string) string {
	base := filepath.Base(original)
	base = unsafeChars.ReplaceAllString(base, "_")
	if len(base) > 100 {
		base = base[len(base)-100:]
	}
	return uuid.NewString() + "-" + base
}
