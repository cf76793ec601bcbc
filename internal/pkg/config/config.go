package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
	"github.com/spf13/viper"
)

// DefaultBackendURL is used when API_BASE_URL is not set
const DefaultBackendURL = "https://rfex-dtgtecbsd2fmfbhc.canadacentral-01.azurewebsites.net"

// InitConfig loads the .env file in local mode and resolves the configuration
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return Load(viper.New())
}

// Load resolves configuration from the environment through v, applying defaults
func Load(v *viper.Viper) *models.Config {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Console.AllowedRoles = splitList(v.GetString("CONSOLE_ALLOWED_ROLES"))
	configs.Console.SecretsClaim = v.GetString("CONSOLE_SECRETS_CLAIM")
	configs.Console.LoginRateLimit = v.GetInt("LOGIN_RATE_LIMIT")
	configs.Console.LoginRateWindow = v.GetDuration("LOGIN_RATE_WINDOW")

	configs.Backend.BaseURL = strings.TrimRight(v.GetString("API_BASE_URL"), "/")
	if configs.Backend.BaseURL == "" {
		configs.Backend.BaseURL = DefaultBackendURL
	}
	configs.Backend.RequestTimeout = v.GetDuration("API_REQUEST_TIMEOUT")
	configs.Backend.PollInterval = v.GetDuration("DASHBOARD_POLL_INTERVAL")
	if configs.Backend.PollInterval <= 0 {
		configs.Backend.PollInterval = 5 * time.Second
	}
	configs.Backend.MaxRetries = v.GetInt("API_MAX_RETRIES")

	configs.Session.Store = v.GetString("SESSION_STORE")
	configs.Session.KeyPrefix = v.GetString("SESSION_KEY_PREFIX")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NSQ.Enabled = v.GetBool("NSQ_ENABLED")
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.Topic = v.GetString("NSQ_TOPIC")

	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	configs.Audit.Enabled = v.GetBool("AUDIT_ENABLED")
	configs.Audit.FilePath = v.GetString("AUDIT_FILE_PATH")

	return configs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "rideflex-admin-console")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)

	v.SetDefault("CONSOLE_ALLOWED_ROLES", "Admin,SuperAdmin")
	v.SetDefault("CONSOLE_SECRETS_CLAIM", "")
	v.SetDefault("LOGIN_RATE_LIMIT", 10)
	v.SetDefault("LOGIN_RATE_WINDOW", "1m")

	v.SetDefault("API_BASE_URL", DefaultBackendURL)
	v.SetDefault("API_REQUEST_TIMEOUT", "30s")
	v.SetDefault("DASHBOARD_POLL_INTERVAL", "5s")
	v.SetDefault("API_MAX_RETRIES", 2)

	v.SetDefault("SESSION_STORE", "memory")
	v.SetDefault("SESSION_KEY_PREFIX", "rideflex")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 5)

	v.SetDefault("NSQ_ENABLED", false)
	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_TOPIC", "booking.action")

	v.SetDefault("NEW_RELIC_ENABLED", false)
	v.SetDefault("NEW_RELIC_APP_NAME", "rideflex-admin-console")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")

	v.SetDefault("AUDIT_ENABLED", true)
	v.SetDefault("AUDIT_FILE_PATH", "logs/audit.log")
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetEnv returns the environment value or defaultValue when unset
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
