package config

import (
	"fmt"
	"time"

	"github.com/wekeepgrowing/project-planner/pkg/config"
	"github.com/wekeepgrowing/project-planner/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const serviceName = "planner"

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverMongoDB  = "mongodb"
	DriverMemory   = "memory"
)

type Config struct {
	Service struct {
		Name        string
		Environment string
		BaseURL     string
	}

	Server struct {
		Host            string
		Port            string
		GRPCPort        string
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
		Debug           bool
	}

	CORS struct {
		AllowOrigins []string
	}

	Database DatabaseConfig
	MongoDB  MongoDBConfig

	Redis struct {
		Addr     string
		Username string
		Password string
		DB       int
		TLS      bool
		Channel  string
	}

	JWT struct {
		Secret string
		// AccessTokenExpiry defaults to 30 seconds.
		AccessTokenExpiry time.Duration
	}

	Auth struct {
		HashCost int
	}

	OAuth struct {
		Google struct {
			ClientID string
		}
	}

	OpenAI struct {
		APIKey  string
		BaseURL string
		Model   string
		Timeout time.Duration
	}

	Email struct {
		Enabled     bool
		SenderEmail string
		SenderName  string
		SMTPHost    string
		SMTPPort    int
		SMTPUser    string
		SMTPPass    string
	}

	Log logger.Config
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
	AutoMigrate     bool
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type MongoDBConfig struct {
	URI      string
	Username string
	Password string
	Database string
	Timeout  time.Duration
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"service.name":               serviceName,
		"service.environment":        "development",
		"server.host":                "0.0.0.0",
		"server.port":                "8000",
		"server.read_timeout":        "30s",
		"server.write_timeout":       "90s",
		"server.shutdown_timeout":    "10s",
		"cors.allow_origins":         []string{"*"},
		"database.driver":            DriverPostgres,
		"database.host":              "localhost",
		"database.port":              5432,
		"database.name":              "planner",
		"database.user":              "postgres",
		"database.sslmode":           "disable",
		"database.max_open_conns":    20,
		"database.max_idle_conns":    5,
		"database.conn_max_lifetime": "30m",
		"database.slow_threshold":    "200ms",
		"database.auto_migrate":      true,
		"mongodb.uri":                "mongodb://localhost:27017",
		"mongodb.database":           "project_handler",
		"mongodb.timeout":            "10s",
		"redis.channel":              "planner.events",
		"jwt.access_token_expiry":    "30s",
		"auth.hash_cost":             bcrypt.DefaultCost,
		"openai.model":               "gpt-4o-mini",
		"openai.timeout":             "60s",
		"email.smtp_port":            587,
		"email.sender_name":          "Project Planner",
		"log.level":                  "info",
		"log.format":                 "json",
		"log.output":                 "stdout",
	}
}

// Load reads configs/{APP_ENV}/planner.yaml (plus PLANNER_* env overrides)
// into a typed Config.
func Load() (*Config, error) {
	cfg, err := config.Load(serviceName, config.WithDefaults(defaults()))
	if err != nil {
		return nil, err
	}
	return fromSource(cfg)
}

func fromSource(cfg config.Config) (*Config, error) {
	c := &Config{}

	c.Service.Name = cfg.GetString("service.name")
	c.Service.Environment = cfg.GetString("service.environment")
	c.Service.BaseURL = cfg.GetString("service.base_url")

	c.Server.Host = cfg.GetString("server.host")
	c.Server.Port = cfg.GetString("server.port")
	c.Server.GRPCPort = cfg.GetString("server.grpc_port")
	c.Server.ReadTimeout = cfg.GetDuration("server.read_timeout")
	c.Server.WriteTimeout = cfg.GetDuration("server.write_timeout")
	c.Server.ShutdownTimeout = cfg.GetDuration("server.shutdown_timeout")
	c.Server.Debug = cfg.GetBool("server.debug")

	c.CORS.AllowOrigins = cfg.GetStringSlice("cors.allow_origins")

	c.Database = DatabaseConfig{
		Driver:          cfg.GetString("database.driver"),
		Host:            cfg.GetString("database.host"),
		Port:            cfg.GetInt("database.port"),
		Name:            cfg.GetString("database.name"),
		User:            cfg.GetString("database.user"),
		Password:        cfg.GetString("database.password"),
		SSLMode:         cfg.GetString("database.sslmode"),
		MaxOpenConns:    cfg.GetInt("database.max_open_conns"),
		MaxIdleConns:    cfg.GetInt("database.max_idle_conns"),
		ConnMaxLifetime: cfg.GetDuration("database.conn_max_lifetime"),
		SlowThreshold:   cfg.GetDuration("database.slow_threshold"),
		AutoMigrate:     cfg.GetBool("database.auto_migrate"),
	}

	c.MongoDB = MongoDBConfig{
		URI:      cfg.GetString("mongodb.uri"),
		Username: cfg.GetString("mongodb.username"),
		Password: cfg.GetString("mongodb.password"),
		Database: cfg.GetString("mongodb.database"),
		Timeout:  cfg.GetDuration("mongodb.timeout"),
	}

	c.Redis.Addr = cfg.GetString("redis.addr")
	c.Redis.Username = cfg.GetString("redis.username")
	c.Redis.Password = cfg.GetString("redis.password")
	c.Redis.DB = cfg.GetInt("redis.db")
	c.Redis.TLS = cfg.GetBool("redis.tls")
	c.Redis.Channel = cfg.GetString("redis.channel")

	c.JWT.Secret = cfg.GetString("jwt.secret")
	c.JWT.AccessTokenExpiry = cfg.GetDuration("jwt.access_token_expiry")

	c.Auth.HashCost = cfg.GetInt("auth.hash_cost")

	c.OAuth.Google.ClientID = cfg.GetString("oauth.google.client_id")

	c.OpenAI.APIKey = cfg.GetString("openai.api_key")
	c.OpenAI.BaseURL = cfg.GetString("openai.base_url")
	c.OpenAI.Model = cfg.GetString("openai.model")
	c.OpenAI.Timeout = cfg.GetDuration("openai.timeout")

	c.Email.Enabled = cfg.GetBool("email.enabled")
	c.Email.SenderEmail = cfg.GetString("email.sender_email")
	c.Email.SenderName = cfg.GetString("email.sender_name")
	c.Email.SMTPHost = cfg.GetString("email.smtp_host")
	c.Email.SMTPPort = cfg.GetInt("email.smtp_port")
	c.Email.SMTPUser = cfg.GetString("email.smtp_user")
	c.Email.SMTPPass = cfg.GetString("email.smtp_pass")

	c.Log = logger.Config{
		Level:       cfg.GetString("log.level"),
		Format:      cfg.GetString("log.format"),
		Output:      cfg.GetString("log.output"),
		FilePath:    cfg.GetString("log.file_path"),
		Development: c.Server.Debug,
		Service:     c.Service.Name,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	if c.JWT.AccessTokenExpiry <= 0 {
		return fmt.Errorf("jwt.access_token_expiry must be positive, got %s", c.JWT.AccessTokenExpiry)
	}
	switch c.Database.Driver {
	case DriverPostgres, DriverMongoDB, DriverMemory:
	default:
		return fmt.Errorf("unsupported database.driver %q", c.Database.Driver)
	}
	if c.Auth.HashCost < bcrypt.MinCost || c.Auth.HashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.hash_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// NewLogger builds the service logger from the log section.
func (c *Config) NewLogger() (*zap.Logger, error) {
	return logger.NewZapLogger(c.Log)
}

// Address is the HTTP listen address.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// GRPCAddress is the health-probe listen address, empty when disabled.
func (c *Config) GRPCAddress() string {
	if c.Server.GRPCPort == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.GRPCPort)
}
