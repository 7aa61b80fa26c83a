package config

import (
	"fmt"
	"strings"

	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// InitConfig builds the application configuration from defaults, an optional
// config file and environment variables, in increasing order of precedence.
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Short names kept for compatibility with existing deployments
	_ = v.BindEnv("app.env", "APP_ENV")
	_ = v.BindEnv("logger.level", "LOG_LEVEL", "LOGGER_LEVEL")
	_ = v.BindEnv("logger.file_path", "LOG_FILE_PATH", "LOGGER_FILE_PATH")
	_ = v.BindEnv("logger.format", "LOG_FORMAT", "LOGGER_FORMAT")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			logrus.WithError(err).WithField("path", configPath).Warn("error loading config from file")
		}
	}

	configs := &models.Config{}
	if err := v.Unmarshal(configs); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return configs, nil
}

func setDefaults(v *viper.Viper) {
	// App config
	v.SetDefault("app.name", "olbiataxi-quote")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "development")

	// Server config
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.shutdown_timeout", 30)

	// Redis config
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	// NSQ config
	v.SetDefault("nsq.address", "")
	v.SetDefault("nsq.topic", "booking.requested")

	// Booking config
	v.SetDefault("booking.driver_number", "00393476308563")
	v.SetDefault("booking.deep_link_base", "https://wa.me/")
	v.SetDefault("booking.currency", "€")
	v.SetDefault("booking.request_limit", 10)
	v.SetDefault("booking.request_window_sec", 60)

	// Widget config
	v.SetDefault("widget.debounce_ms", 200)
	v.SetDefault("widget.frame_ms", 16)
	v.SetDefault("widget.priced_anim_ms", 800)
	v.SetDefault("widget.zero_anim_ms", 400)
	v.SetDefault("widget.outbound_capacity", 256)

	// Logger config
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.format", "json")
}
