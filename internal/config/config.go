package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	LLM      LLMConfig      `yaml:"llm"`
	Stripe   StripeConfig   `yaml:"stripe"`
	Email    EmailConfig    `yaml:"email"`
	Quota    QuotaConfig    `yaml:"quota"`
	Chat     ChatConfig     `yaml:"chat"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host              string        `yaml:"host"               env:"SERVER_HOST"               env-default:"0.0.0.0"`
	Port              int           `yaml:"port"               env:"SERVER_PORT"               env-default:"8080"`
	ReadTimeout       time.Duration `yaml:"read_timeout"       env:"SERVER_READ_TIMEOUT"       env-default:"10s"`
	WriteTimeout      time.Duration `yaml:"write_timeout"      env:"SERVER_WRITE_TIMEOUT"      env-default:"60s"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"       env:"SERVER_IDLE_TIMEOUT"       env-default:"60s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"   env:"SERVER_SHUTDOWN_TIMEOUT"   env-default:"10s"`
	RateLimitPerMin   int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"120"`
	BaseURL           string        `yaml:"base_url"           env:"SERVER_BASE_URL"           env-default:"http://localhost:8080"`
	RunMigrations     bool          `yaml:"run_migrations"     env:"SERVER_RUN_MIGRATIONS"     env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"inner-architect"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	VerifyTokenTTL   time.Duration `yaml:"verify_token_ttl"   env:"AUTH_VERIFY_TOKEN_TTL"   env-default:"48h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// LLMConfig holds chat-completion provider settings. Anthropic is the
// primary provider; OpenAI is used when the Anthropic key is absent or a
// call fails after retries.
type LLMConfig struct {
	AnthropicAPIKey string        `yaml:"anthropic_api_key" env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string        `yaml:"anthropic_model"   env:"ANTHROPIC_MODEL"   env-default:"claude-3-5-sonnet-20241022"`
	OpenAIAPIKey    string        `yaml:"openai_api_key"    env:"OPENAI_API_KEY"`
	OpenAIModel     string        `yaml:"openai_model"      env:"OPENAI_MODEL"      env-default:"gpt-4o-mini"`
	MaxTokens       int           `yaml:"max_tokens"        env:"LLM_MAX_TOKENS"    env-default:"1024"`
	RequestTimeout  time.Duration `yaml:"request_timeout"   env:"LLM_REQUEST_TIMEOUT" env-default:"30s"`
	MaxRetries      uint64        `yaml:"max_retries"       env:"LLM_MAX_RETRIES"   env-default:"2"`
}

// StripeConfig holds billing settings. An empty secret key disables the
// billing surface; an empty webhook secret disables signature checks
// (development only).
type StripeConfig struct {
	SecretKey           string `yaml:"secret_key"            env:"STRIPE_SECRET_KEY"`
	WebhookSecret       string `yaml:"webhook_secret"        env:"STRIPE_WEBHOOK_SECRET"`
	PremiumPriceID      string `yaml:"premium_price_id"      env:"STRIPE_PREMIUM_PRICE_ID"`
	ProfessionalPriceID string `yaml:"professional_price_id" env:"STRIPE_PROFESSIONAL_PRICE_ID"`
}

// EmailConfig holds SendGrid settings. An empty API key turns the sender
// into a no-op that only logs.
type EmailConfig struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key" env:"SENDGRID_API_KEY"`
	FromAddress    string `yaml:"from_address"     env:"EMAIL_FROM_ADDRESS" env-default:"no-reply@innerarchitect.app"`
	FromName       string `yaml:"from_name"        env:"EMAIL_FROM_NAME"    env-default:"Inner Architect"`
}

// QuotaConfig holds quota bookkeeping settings.
type QuotaConfig struct {
	// RetentionDays controls how long stale anonymous counter rows are kept
	// before cleanup removes them.
	RetentionDays int `yaml:"retention_days" env:"QUOTA_RETENTION_DAYS" env-default:"90"`
}

// ChatConfig holds conversation assembly settings.
type ChatConfig struct {
	// HistoryDepth is how many prior exchanges are replayed to the LLM.
	HistoryDepth int `yaml:"history_depth" env:"CHAT_HISTORY_DEPTH" env-default:"10"`
	// MaxMessageLen bounds a single user message.
	MaxMessageLen int `yaml:"max_message_len" env:"CHAT_MAX_MESSAGE_LEN" env-default:"4000"`
	// SummaryThreshold is the message count at which summarization is suggested.
	SummaryThreshold int `yaml:"summary_threshold" env:"CHAT_SUMMARY_THRESHOLD" env-default:"20"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Session-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
