package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Configuration keys. Each key is also read from the upper-cased environment variable.
const (
	keyPort                     = "port"
	keyEnvironment              = "environment"
	keyAutoMigrate              = "auto_migrate"
	keyDatabaseURL              = "database_url"
	keyDatabaseName             = "database_name"
	keyFrontendURL              = "frontend_url"
	keySecretKey                = "secret_key"
	keyAccessTokenExpireMinutes = "access_token_expire_minutes"
	keyAuthRateLimitPerMinute   = "auth_rate_limit_per_minute"
	keyRedisURL                 = "redis_url"
	keyCacheTTLSeconds          = "cache_ttl_seconds"
	keyLogLevel                 = "log_level"
	keyLogType                  = "log_type"
	keyLogFilePath              = "log_file_path"
	keyLogMaxSize               = "log_max_size"
	keyLogMaxBackups            = "log_max_backups"
	keyLogMaxAge                = "log_max_age"
)

// RestConfig is the complete configuration of the REST service
type RestConfig struct {
	Port        string `mapstructure:"port" validate:"required,numeric"`
	Environment string `mapstructure:"environment" validate:"required"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`

	Database DatabaseSettings `mapstructure:"database"`
	Cors     CorsSettings     `mapstructure:"cors"`
	Auth     AuthSettings     `mapstructure:"auth"`
	Cache    CacheSettings    `mapstructure:"cache"`
	Logger   LoggerSettings   `mapstructure:"logger"`
}

// IsProduction reports whether ENVIRONMENT is production
func (c *RestConfig) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// Validate checks the top level fields and every nested settings struct
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.StructPartial(c, "Port", "Environment"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Cors.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}

	return nil
}

// InitializeRestConfig reads the optional YAML file at configPath and the environment.
// Environment variables take precedence over file values.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	return loadRestConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyPort, "8000")
	v.SetDefault(keyEnvironment, EnvironmentDevelopment)
	v.SetDefault(keyAutoMigrate, true)
	v.SetDefault(keyDatabaseURL, DefaultDatabaseURL)
	v.SetDefault(keyFrontendURL, DefaultFrontendURL)
	v.SetDefault(keyAccessTokenExpireMinutes, 30)
	v.SetDefault(keyAuthRateLimitPerMinute, 20)
	v.SetDefault(keyCacheTTLSeconds, 300)
	v.SetDefault(keyLogLevel, LogLevelInfo)
	v.SetDefault(keyLogType, LogTypeConsole)
	v.SetDefault(keyLogMaxSize, 10)
	v.SetDefault(keyLogMaxBackups, 3)
	v.SetDefault(keyLogMaxAge, 28)
}

func loadRestConfig(v *viper.Viper) (*RestConfig, error) {
	database, err := DatabaseSettingsFromURL(v.GetString(keyDatabaseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	database.Name = v.GetString(keyDatabaseName)

	cfg := &RestConfig{
		Port:        v.GetString(keyPort),
		Environment: v.GetString(keyEnvironment),
		AutoMigrate: v.GetBool(keyAutoMigrate),
		Database:    database,
		Cors: CorsSettings{
			FrontendURL: v.GetString(keyFrontendURL),
		},
		Auth: AuthSettings{
			SecretKey:                v.GetString(keySecretKey),
			AccessTokenExpireMinutes: v.GetInt(keyAccessTokenExpireMinutes),
			RateLimitPerMinute:       v.GetInt(keyAuthRateLimitPerMinute),
		},
		Cache: CacheSettings{
			RedisURL:   v.GetString(keyRedisURL),
			TTLSeconds: v.GetInt(keyCacheTTLSeconds),
		},
		Logger: LoggerSettings{
			LogLevel:   v.GetString(keyLogLevel),
			LogType:    v.GetString(keyLogType),
			FilePath:   v.GetString(keyLogFilePath),
			MaxSize:    v.GetInt(keyLogMaxSize),
			MaxBackups: v.GetInt(keyLogMaxBackups),
			MaxAge:     v.GetInt(keyLogMaxAge),
		},
	}

	// Production must bring its own signing key
	if cfg.Auth.SecretKey == "" && !cfg.IsProduction() {
		cfg.Auth.SecretKey = DevelopmentSecretKey
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
