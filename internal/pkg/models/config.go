package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Console  ConsoleConfig
	Backend  BackendConfig
	Session  SessionConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Audit    AuditConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains console HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// ConsoleConfig gates access to the console routes
type ConsoleConfig struct {
	AllowedRoles    []string // any of these roles may use the console
	SecretsClaim    string   // claim required to update secrets, empty for none
	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// BackendConfig describes the remote RideFlex API
type BackendConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	PollInterval   time.Duration
	MaxRetries     int
}

// SessionConfig selects where the token/user pair is persisted
type SessionConfig struct {
	Store     string // "memory" or "redis"
	KeyPrefix string
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains the NSQ daemon used for booking action events
type NSQConfig struct {
	Enabled bool
	Address string
	Topic   string
}

// NewRelicConfig contains APM configuration
type NewRelicConfig struct {
	Enabled    bool
	AppName    string
	LicenseKey string
}

// LoggerConfig contains application log configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// AuditConfig contains the admin action audit log configuration
type AuditConfig struct {
	Enabled  bool
	FilePath string
}
