package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Cipher   CipherConfig
	Email    EmailConfig
	Stripe   StripeConfig
	Upload   UploadConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	BaseURL     string // URL base da API para construir URIs RFC 7807
	FrontendURL string // URL base do frontend para links em emails e Stripe
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type JWTConfig struct {
	Secret string
	Expiry string // Duração no formato do time.ParseDuration (default: 24h)
	Issuer string
}

// CipherConfig configura o envelope simétrico aplicado ao token de sessão.
// A chave deve ter exatamente 32 bytes (AES-256).
type CipherConfig struct {
	Key string
}

type EmailConfig struct {
	Enabled      bool
	From         string
	ResendAPIKey string
}

type StripeConfig struct {
	SecretKey string
	Currency  string
}

type UploadConfig struct {
	Dir string // Diretório local onde arquivos enviados são persistidos
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// Load carrega as configurações do ambiente.
// Um arquivo .env, se presente, é carregado primeiro; variáveis já definidas
// no ambiente têm precedência.
func Load() (*Config, error) {
	_ = godotenv.Load()
	viper.AutomaticEnv()

	viper.SetDefault("ENV", "development")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("JWT_EXPIRY", "24h")
	viper.SetDefault("JWT_ISSUER", "eventra-api")
	viper.SetDefault("STRIPE_CURRENCY", "usd")
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIN_CONNS", 2)
	viper.SetDefault("DB_MAX_IDLE_TIME", 300)

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port:        viper.GetString("PORT"),
			Host:        viper.GetString("HOST"),
			BaseURL:     viper.GetString("API_BASE_URL"),
			FrontendURL: viper.GetString("FRONTEND_URL"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetInt("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			DBName:      viper.GetString("DB_NAME"),
			SSLMode:     viper.GetString("DB_SSL_MODE"),
			MaxConns:    viper.GetInt("DB_MAX_CONNS"),
			MinConns:    viper.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: viper.GetInt("DB_MAX_IDLE_TIME"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
			Expiry: viper.GetString("JWT_EXPIRY"),
			Issuer: viper.GetString("JWT_ISSUER"),
		},
		Cipher: CipherConfig{
			Key: viper.GetString("CIPHER_KEY"),
		},
		Email: EmailConfig{
			Enabled:      viper.GetBool("EMAIL_ENABLED"),
			From:         viper.GetString("EMAIL_FROM"),
			ResendAPIKey: viper.GetString("RESEND_API_KEY"),
		},
		Stripe: StripeConfig{
			SecretKey: viper.GetString("STRIPE_SECRET_KEY"),
			Currency:  viper.GetString("STRIPE_CURRENCY"),
		},
		Upload: UploadConfig{
			Dir: viper.GetString("UPLOAD_DIR"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetString("CORS_ALLOWED_ORIGINS"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate rejeita configurações sem os segredos obrigatórios
func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.Cipher.Key) != 32 {
		return fmt.Errorf("CIPHER_KEY must be exactly 32 bytes, got %d", len(c.Cipher.Key))
	}
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	return nil
}

// Origins retorna as origens permitidas como lista.
// Lista vazia faz o servidor liberar todas as origens.
func (c *CORSConfig) Origins() []string {
	if c.AllowedOrigins == "" {
		return nil
	}

	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
