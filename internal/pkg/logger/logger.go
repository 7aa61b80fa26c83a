package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// AppLogger is our custom logger that supports multiple outputs
type AppLogger struct {
	*logrus.Logger
	service  string
	filePath string
	file     *os.File
}

// Config holds logger configuration
type Config struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
	Format   string `json:"format" mapstructure:"format"` // "json" or "text"
	Service  string `json:"service" mapstructure:"service"`
}

// NewAppLogger creates a new application logger
func NewAppLogger(config Config) (*AppLogger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	// Set log level
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	switch config.Format {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	default:
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	}

	appLogger := &AppLogger{
		Logger:  logger,
		service: config.Service,
	}

	// Setup file output if path is provided
	if config.FilePath != "" {
		if err := appLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return appLogger, nil
}

// NewFromConfig initializes the logger directly from the application config
func NewFromConfig(configs *models.Config) (*AppLogger, error) {
	return NewAppLogger(Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
		Format:   configs.Logger.Format,
		Service:  configs.App.Name,
	})
}

// setupFileOutput configures file output for the logger
func (al *AppLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.filePath = filePath
	al.file = file

	// Set output to both stdout and file
	al.Logger.SetOutput(io.MultiWriter(os.Stdout, file))

	return nil
}

// Close closes the log file
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}

// entry returns a log entry carrying the service name and the given fields
func (al *AppLogger) entry(fields []Field) *logrus.Entry {
	data := make(logrus.Fields, len(fields)+1)
	if al.service != "" {
		data["service"] = al.service
	}
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return al.Logger.WithFields(data)
}

// WithFields returns an entry with the service name and custom fields
func (al *AppLogger) WithFields(fields logrus.Fields) *logrus.Entry {
	if fields == nil {
		fields = logrus.Fields{}
	}
	if al.service != "" {
		fields["service"] = al.service
	}
	return al.Logger.WithFields(fields)
}

// WithRequestContext adds request context fields
func (al *AppLogger) WithRequestContext(requestID, clientID, method, path string) *logrus.Entry {
	return al.WithFields(logrus.Fields{
		"request_id": requestID,
		"client_id":  clientID,
		"method":     method,
		"path":       path,
	})
}

// LogHTTPRequest logs an HTTP request with all relevant context
func (al *AppLogger) LogHTTPRequest(method, path, clientIP, requestID string, statusCode int, latency time.Duration, err error) {
	entry := al.WithFields(logrus.Fields{
		"status":     statusCode,
		"latency":    latency.String(),
		"latency_ms": latency.Milliseconds(),
		"client_ip":  clientIP,
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})

	switch {
	case statusCode >= 500:
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Error("Server error")
	case statusCode >= 400:
		entry.Warn("Client error")
	default:
		entry.Info("Request processed")
	}
}

// Info logs an info message with optional fields
func (al *AppLogger) Info(msg string, fields ...Field) {
	al.entry(fields).Info(msg)
}

// Warn logs a warning message with optional fields
func (al *AppLogger) Warn(msg string, fields ...Field) {
	al.entry(fields).Warn(msg)
}

// Error logs an error message with optional fields
func (al *AppLogger) Error(msg string, fields ...Field) {
	al.entry(fields).Error(msg)
}

// Debug logs a debug message with optional fields
func (al *AppLogger) Debug(msg string, fields ...Field) {
	al.entry(fields).Debug(msg)
}

// Fatal logs a fatal message and exits
func (al *AppLogger) Fatal(msg string, fields ...Field) {
	al.entry(fields).Fatal(msg)
}
