package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	minSecretBytes = 32
	minBcryptCost  = 10
	maxBcryptCost  = 31
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth    AuthConfig
	HTTP    HTTPConfig
	OAuth   OAuthConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Storage StorageConfig
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET, required"`
	TokenTTL   time.Duration `env:"TOKEN_TTL, default=24h"`
	BcryptCost int           `env:"BCRYPT_COST, default=12"`
	// PolicyFile optionally replaces the built-in access rules.
	PolicyFile string `env:"POLICY_FILE"`
}

type HTTPConfig struct {
	FrontendBaseURL string   `env:"FRONTEND_BASE_URL, default=http://localhost:4200"`
	AllowedOrigins  []string `env:"CORS_ALLOWED_ORIGINS, default=http://localhost:4200,http://localhost:3000"`
}

type OAuthConfig struct {
	IssuerURL    string        `env:"OAUTH_ISSUER_URL, default=https://accounts.google.com"`
	ClientID     string        `env:"OAUTH_CLIENT_ID"`
	ClientSecret string        `env:"OAUTH_CLIENT_SECRET"`
	RedirectURL  string        `env:"OAUTH_REDIRECT_URL, default=http://localhost:8080/login/oauth2/code"`
	Scopes       []string      `env:"OAUTH_SCOPES, default=openid,email,profile"`
	StateTTL     time.Duration `env:"OAUTH_STATE_TTL, default=10m"`
}

// Enabled reports whether a client is registered; federated login routes are
// mounted only when it is.
func (c OAuthConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=hobbie"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type StorageConfig struct {
	Bucket    string `env:"S3_BUCKET"`
	Region    string `env:"S3_REGION, default=eu-central-1"`
	Endpoint  string `env:"S3_ENDPOINT"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
}

func (c StorageConfig) Enabled() bool {
	return c.Bucket != ""
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through l and validates it.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < minSecretBytes {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", minSecretBytes)
	}
	if c.Auth.BcryptCost < minBcryptCost || c.Auth.BcryptCost > maxBcryptCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", minBcryptCost, maxBcryptCost)
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.OAuth.StateTTL <= 0 {
		return errors.New("OAUTH_STATE_TTL must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
