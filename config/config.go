package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - verdicts, scores, reports, queue, trust
	Postgres PostgresConfig

	// Redis - trust score cache
	Redis RedisConfig

	// Kafka - content intake and moderation events
	Kafka KafkaConfig

	// JWT - Authentication
	JWT       JWTConfig
	Cookie    CookieConfig
	Encrypter EncrypterConfig
	Internal  InternalConfig

	// Moderation engine tuning
	Moderation ModerationConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers       []string
	IntakeTopic   string // content.submitted
	EventsTopic   string // moderation.flagged
	ConsumerGroup string
}

// JWTConfig is used to verify tokens (same secret/issuer as the identity
// service). This service does not issue tokens.
type JWTConfig struct {
	Algorithm string
	Issuer    string
	Audience  []string
	SecretKey string
	TTL       int // in seconds
}

// CookieConfig configures the auth cookie used to read the token.
type CookieConfig struct {
	Domain   string
	Secure   bool
	SameSite string
	MaxAge   int
	Name     string
}

// EncrypterConfig is the configuration for the encrypter
type EncrypterConfig struct {
	Key string
}

// InternalConfig is the configuration for internal service authentication
type InternalConfig struct {
	// InternalKey is the shared secret for InternalAuth (Authorization header). Optional; leave empty to disable.
	InternalKey string
}

// DiscordConfig is the configuration for the Discord webhook (optional).
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// ModerationConfig tunes the moderation engine. Word lists ship with
// built-in defaults and can be overridden without redeploying logic.
type ModerationConfig struct {
	// FailOpenOnDecisionError keeps the source policy of approving content
	// when the auto-moderation decision procedure fails. With this off, a
	// decision failure escalates the content to the review queue instead.
	FailOpenOnDecisionError bool

	Wordlists WordlistConfig
}

// WordlistConfig holds the analyzer word lists.
type WordlistConfig struct {
	Profanity           []string
	PromotionalKeywords []string
	ToxicWords          []string
	HarassmentWords     []string
	GenericPhrases      []string
	StrongPositiveWords []string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	viper.SetConfigName("moderation-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/yumzoom/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.IntakeTopic = viper.GetString("kafka.intake_topic")
	cfg.Kafka.EventsTopic = viper.GetString("kafka.events_topic")
	cfg.Kafka.ConsumerGroup = viper.GetString("kafka.consumer_group")

	// JWT
	cfg.JWT.Algorithm = viper.GetString("jwt.algorithm")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.TTL = viper.GetInt("jwt.ttl")

	// Cookie
	cfg.Cookie.Domain = viper.GetString("cookie.domain")
	cfg.Cookie.Secure = viper.GetBool("cookie.secure")
	cfg.Cookie.SameSite = viper.GetString("cookie.same_site")
	cfg.Cookie.MaxAge = viper.GetInt("cookie.max_age")
	cfg.Cookie.Name = viper.GetString("cookie.name")

	// Encrypter
	cfg.Encrypter.Key = viper.GetString("encrypter.key")

	// Internal service auth
	cfg.Internal.InternalKey = viper.GetString("internal.internal_key")

	// Moderation
	cfg.Moderation.FailOpenOnDecisionError = viper.GetBool("moderation.fail_open_on_decision_error")
	cfg.Moderation.Wordlists.Profanity = viper.GetStringSlice("moderation.wordlists.profanity")
	cfg.Moderation.Wordlists.PromotionalKeywords = viper.GetStringSlice("moderation.wordlists.promotional_keywords")
	cfg.Moderation.Wordlists.ToxicWords = viper.GetStringSlice("moderation.wordlists.toxic_words")
	cfg.Moderation.Wordlists.HarassmentWords = viper.GetStringSlice("moderation.wordlists.harassment_words")
	cfg.Moderation.Wordlists.GenericPhrases = viper.GetStringSlice("moderation.wordlists.generic_phrases")
	cfg.Moderation.Wordlists.StrongPositiveWords = viper.GetStringSlice("moderation.wordlists.strong_positive_words")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")

	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.dbname", "yumzoom")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("kafka.intake_topic", "content.submitted")
	viper.SetDefault("kafka.events_topic", "moderation.flagged")
	viper.SetDefault("kafka.consumer_group", "moderation-consumer-content-intake")

	viper.SetDefault("jwt.algorithm", "HS256")
	viper.SetDefault("jwt.ttl", 3600)

	viper.SetDefault("cookie.name", "yumzoom_auth_token")

	viper.SetDefault("moderation.fail_open_on_decision_error", true)
	viper.SetDefault("moderation.wordlists.profanity", DefaultProfanityWords)
	viper.SetDefault("moderation.wordlists.promotional_keywords", DefaultPromotionalKeywords)
	viper.SetDefault("moderation.wordlists.toxic_words", DefaultToxicWords)
	viper.SetDefault("moderation.wordlists.harassment_words", DefaultHarassmentWords)
	viper.SetDefault("moderation.wordlists.generic_phrases", DefaultGenericPhrases)
	viper.SetDefault("moderation.wordlists.strong_positive_words", DefaultStrongPositiveWords)
}
