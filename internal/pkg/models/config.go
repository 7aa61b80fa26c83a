package models

// Config represents application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	NSQ     NSQConfig     `mapstructure:"nsq"`
	Booking BookingConfig `mapstructure:"booking"`
	Widget  WidgetConfig  `mapstructure:"widget"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"env"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NSQConfig contains NSQ producer configuration. An empty address disables publishing.
type NSQConfig struct {
	Address string `mapstructure:"address"`
	Topic   string `mapstructure:"topic"`
}

// BookingConfig contains the outbound booking message settings
type BookingConfig struct {
	DriverNumber     string `mapstructure:"driver_number"`
	DeepLinkBase     string `mapstructure:"deep_link_base"`
	Currency         string `mapstructure:"currency"`
	RequestLimit     int    `mapstructure:"request_limit"`
	RequestWindowSec int    `mapstructure:"request_window_sec"`
}

// WidgetConfig contains widget session timings, in milliseconds
type WidgetConfig struct {
	DebounceMs       int `mapstructure:"debounce_ms"`
	FrameMs          int `mapstructure:"frame_ms"`
	PricedAnimMs     int `mapstructure:"priced_anim_ms"`
	ZeroAnimMs       int `mapstructure:"zero_anim_ms"`
	OutboundCapacity int `mapstructure:"outbound_capacity"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
	Format   string `mapstructure:"format"`
}
