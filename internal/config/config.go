package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DemoMode  bool
	Analyzer  AnalyzerConfig
	OpenAI    OpenAIConfig
	Firestore FirestoreConfig
	S3        S3Config
	VaultDB   DBConfig
	Vault     VaultConfig
	JWT       JWTConfig
	Email     EmailConfig
	CORS      CORSConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// AnalyzerConfig holds document-analysis API settings.
type AnalyzerConfig struct {
	Endpoint         string `mapstructure:"endpoint"`
	Key              string `mapstructure:"key"`
	PollIntervalSecs int    `mapstructure:"poll_interval_secs"`
	MaxPolls         int    `mapstructure:"max_polls"`
	TimeoutSecs      int    `mapstructure:"timeout_secs"`
}

// Configured reports whether the analyzer has credentials to reach the
// external service.
func (a *AnalyzerConfig) Configured() bool {
	return a.Endpoint != "" && a.Key != ""
}

// OpenAIConfig holds hosted chat-completion settings.
type OpenAIConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	Key         string `mapstructure:"key"`
	Deployment  string `mapstructure:"deployment"`
	APIVersion  string `mapstructure:"api_version"`
	MaxTokens   int    `mapstructure:"max_tokens"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	MaxRetries  int    `mapstructure:"max_retries"`
}

// Configured reports whether the chat completion client has credentials.
func (o *OpenAIConfig) Configured() bool {
	return o.Endpoint != "" && o.Key != ""
}

// FirestoreConfig holds document-database settings.
type FirestoreConfig struct {
	ProjectID           string `mapstructure:"project_id"`
	DocumentsCollection string `mapstructure:"documents_collection"`
	ClientsCollection   string `mapstructure:"clients_collection"`
}

// Configured reports whether the record store can reach Firestore.
func (f *FirestoreConfig) Configured() bool {
	return f.ProjectID != ""
}

// S3Config holds blob storage settings for document files.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// DBConfig holds PostgreSQL connection settings for the form vault.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// VaultConfig holds form-vault settings.
type VaultConfig struct {
	// EncryptionKey is a base64-encoded 32-byte key. When empty the vault
	// generates an ephemeral key at startup; records written under an
	// ephemeral key are unreadable after a restart.
	EncryptionKey string `mapstructure:"encryption_key"`
	TemplateDir   string `mapstructure:"template_dir"`
	OutputDir     string `mapstructure:"output_dir"`
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret       string        `mapstructure:"secret"`
	AccessExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer       string        `mapstructure:"issuer"`
}

// EmailConfig holds report delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the JOBCOACH_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("JOBCOACH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Demo mode is the safe default: no external services required.
	v.SetDefault("demo_mode", true)

	// Analyzer defaults
	v.SetDefault("analyzer.endpoint", "")
	v.SetDefault("analyzer.key", "")
	v.SetDefault("analyzer.poll_interval_secs", 1)
	v.SetDefault("analyzer.max_polls", 50)
	v.SetDefault("analyzer.timeout_secs", 120)

	// OpenAI defaults
	v.SetDefault("openai.endpoint", "")
	v.SetDefault("openai.key", "")
	v.SetDefault("openai.deployment", "gpt-4")
	v.SetDefault("openai.api_version", "2023-07-01-preview")
	v.SetDefault("openai.max_tokens", 800)
	v.SetDefault("openai.timeout_secs", 120)
	v.SetDefault("openai.max_retries", 5)

	// Firestore defaults
	v.SetDefault("firestore.project_id", "")
	v.SetDefault("firestore.documents_collection", "documents")
	v.SetDefault("firestore.clients_collection", "clients")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "jobcoach-documents")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 50)
	v.SetDefault("s3.presign_expiry", 3600)

	// Vault DB defaults
	v.SetDefault("vaultdb.host", "localhost")
	v.SetDefault("vaultdb.port", 5432)
	v.SetDefault("vaultdb.user", "jobcoach")
	v.SetDefault("vaultdb.password", "jobcoach_secret")
	v.SetDefault("vaultdb.name", "jobcoach_vault")
	v.SetDefault("vaultdb.sslmode", "disable")
	v.SetDefault("vaultdb.max_open", 25)
	v.SetDefault("vaultdb.max_idle", 10)

	// Vault defaults
	v.SetDefault("vault.encryption_key", "")
	v.SetDefault("vault.template_dir", "templates")
	v.SetDefault("vault.output_dir", "filled")

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "30m")
	v.SetDefault("jwt.issuer", "jobcoach")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@jobcoach.example.com")
	v.SetDefault("email.from_name", "Job Coach Assistant")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "JOBCOACH_SERVER_PORT",
		"server.read_timeout":            "JOBCOACH_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "JOBCOACH_SERVER_WRITE_TIMEOUT",
		"server.environment":             "JOBCOACH_SERVER_ENVIRONMENT",
		"demo_mode":                      "JOBCOACH_DEMO_MODE",
		"analyzer.endpoint":              "JOBCOACH_ANALYZER_ENDPOINT",
		"analyzer.key":                   "JOBCOACH_ANALYZER_KEY",
		"analyzer.poll_interval_secs":    "JOBCOACH_ANALYZER_POLL_INTERVAL_SECS",
		"analyzer.max_polls":             "JOBCOACH_ANALYZER_MAX_POLLS",
		"analyzer.timeout_secs":          "JOBCOACH_ANALYZER_TIMEOUT_SECS",
		"openai.endpoint":                "JOBCOACH_OPENAI_ENDPOINT",
		"openai.key":                     "JOBCOACH_OPENAI_KEY",
		"openai.deployment":              "JOBCOACH_OPENAI_DEPLOYMENT",
		"openai.api_version":             "JOBCOACH_OPENAI_API_VERSION",
		"openai.max_tokens":              "JOBCOACH_OPENAI_MAX_TOKENS",
		"openai.timeout_secs":            "JOBCOACH_OPENAI_TIMEOUT_SECS",
		"openai.max_retries":             "JOBCOACH_OPENAI_MAX_RETRIES",
		"firestore.project_id":           "JOBCOACH_FIRESTORE_PROJECT_ID",
		"firestore.documents_collection": "JOBCOACH_FIRESTORE_DOCUMENTS_COLLECTION",
		"firestore.clients_collection":   "JOBCOACH_FIRESTORE_CLIENTS_COLLECTION",
		"s3.region":                      "JOBCOACH_S3_REGION",
		"s3.bucket":                      "JOBCOACH_S3_BUCKET",
		"s3.endpoint":                    "JOBCOACH_S3_ENDPOINT",
		"s3.access_key":                  "JOBCOACH_S3_ACCESS_KEY",
		"s3.secret_key":                  "JOBCOACH_S3_SECRET_KEY",
		"s3.max_file_size_mb":            "JOBCOACH_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":              "JOBCOACH_S3_PRESIGN_EXPIRY",
		"vaultdb.host":                   "JOBCOACH_VAULTDB_HOST",
		"vaultdb.port":                   "JOBCOACH_VAULTDB_PORT",
		"vaultdb.user":                   "JOBCOACH_VAULTDB_USER",
		"vaultdb.password":               "JOBCOACH_VAULTDB_PASSWORD",
		"vaultdb.name":                   "JOBCOACH_VAULTDB_NAME",
		"vaultdb.sslmode":                "JOBCOACH_VAULTDB_SSLMODE",
		"vaultdb.max_open":               "JOBCOACH_VAULTDB_MAX_OPEN",
		"vaultdb.max_idle":               "JOBCOACH_VAULTDB_MAX_IDLE",
		"vault.encryption_key":           "JOBCOACH_VAULT_ENCRYPTION_KEY",
		"vault.template_dir":             "JOBCOACH_VAULT_TEMPLATE_DIR",
		"vault.output_dir":               "JOBCOACH_VAULT_OUTPUT_DIR",
		"jwt.secret":                     "JOBCOACH_JWT_SECRET",
		"jwt.access_expiry":              "JOBCOACH_JWT_ACCESS_EXPIRY",
		"jwt.issuer":                     "JOBCOACH_JWT_ISSUER",
		"email.provider":                 "JOBCOACH_EMAIL_PROVIDER",
		"email.region":                   "JOBCOACH_EMAIL_REGION",
		"email.from_address":             "JOBCOACH_EMAIL_FROM_ADDRESS",
		"email.from_name":                "JOBCOACH_EMAIL_FROM_NAME",
		"cors.allowed_origins":           "JOBCOACH_CORS_ALLOWED_ORIGINS",
		"log.level":                      "JOBCOACH_LOG_LEVEL",
		"log.format":                     "JOBCOACH_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if JOBCOACH_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("JOBCOACH_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DemoMode = v.GetBool("demo_mode")
	cfg.Analyzer = AnalyzerConfig{
		Endpoint:         v.GetString("analyzer.endpoint"),
		Key:              v.GetString("analyzer.key"),
		PollIntervalSecs: v.GetInt("analyzer.poll_interval_secs"),
		MaxPolls:         v.GetInt("analyzer.max_polls"),
		TimeoutSecs:      v.GetInt("analyzer.timeout_secs"),
	}
	cfg.OpenAI = OpenAIConfig{
		Endpoint:    v.GetString("openai.endpoint"),
		Key:         v.GetString("openai.key"),
		Deployment:  v.GetString("openai.deployment"),
		APIVersion:  v.GetString("openai.api_version"),
		MaxTokens:   v.GetInt("openai.max_tokens"),
		TimeoutSecs: v.GetInt("openai.timeout_secs"),
		MaxRetries:  v.GetInt("openai.max_retries"),
	}
	cfg.Firestore = FirestoreConfig{
		ProjectID:           v.GetString("firestore.project_id"),
		DocumentsCollection: v.GetString("firestore.documents_collection"),
		ClientsCollection:   v.GetString("firestore.clients_collection"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.VaultDB = DBConfig{
		Host:     v.GetString("vaultdb.host"),
		Port:     v.GetInt("vaultdb.port"),
		User:     v.GetString("vaultdb.user"),
		Password: v.GetString("vaultdb.password"),
		Name:     v.GetString("vaultdb.name"),
		SSLMode:  v.GetString("vaultdb.sslmode"),
		MaxOpen:  v.GetInt("vaultdb.max_open"),
		MaxIdle:  v.GetInt("vaultdb.max_idle"),
	}
	cfg.Vault = VaultConfig{
		EncryptionKey: v.GetString("vault.encryption_key"),
		TemplateDir:   v.GetString("vault.template_dir"),
		OutputDir:     v.GetString("vault.output_dir"),
	}
	cfg.JWT = JWTConfig{
		Secret:       v.GetString("jwt.secret"),
		AccessExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:       v.GetString("jwt.issuer"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
