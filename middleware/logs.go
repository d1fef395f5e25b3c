package middleware

import (
	"TaskFlow/Models"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LogConfig holds configuration for the logging middleware
type LogConfig struct {
	// Enable console logging
	Console bool
	// Enable file logging
	File bool
	// Log file path
	LogFilePath string
	// Persist entries to the audit_logs table
	Persist bool
	// Skip logging for specific paths
	SkipPaths []string
}

// LogData contains all the information that will be logged
type LogData struct {
	Timestamp     time.Time     `json:"timestamp"`
	Method        string        `json:"method"`
	Path          string        `json:"path"`
	URL           string        `json:"url"`
	Status        int           `json:"status"`
	Latency       time.Duration `json:"latency"`
	IP            string        `json:"ip"`
	UserAgent     string        `json:"user_agent"`
	Error         string        `json:"error,omitempty"`
	UserID        uint          `json:"user_id"`
	Username      string        `json:"username"`
	ContentLength int64         `json:"content_length"`
}

// DefaultLogConfig returns a default configuration for the logging middleware
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Console:     true,
		File:        true,
		LogFilePath: "logs/requests.log",
		Persist:     true,
		SkipPaths:   []string{"/health"},
	}
}

// RequestLogger creates a new logging middleware with the given configuration
func RequestLogger(config ...LogConfig) fiber.Handler {
	cfg := DefaultLogConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	// Ensure logs directory exists
	if cfg.File {
		if err := os.MkdirAll("logs", 0755); err != nil {
			log.Printf("Error creating logs directory: %v\n", err)
		}
	}

	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Check if we should skip this path
		for _, skipPath := range cfg.SkipPaths {
			if c.Path() == skipPath {
				return c.Next()
			}
		}

		// Process request
		err := c.Next()

		// Calculate latency
		latency := time.Since(start)

		// Get user from context if available
		var userID uint
		var username string
		if user := c.Locals("user"); user != nil {
			if userStruct, ok := user.(Models.User); ok {
				userID = userStruct.ID
				username = userStruct.Name
			}
		}

		logData := LogData{
			Timestamp:     start,
			Method:        c.Method(),
			Path:          c.Path(),
			URL:           c.OriginalURL(),
			Status:        c.Response().StatusCode(),
			Latency:       latency,
			IP:            c.IP(),
			UserAgent:     c.Get("User-Agent"),
			UserID:        userID,
			Username:      username,
			ContentLength: int64(len(c.Response().Body())),
		}

		if err != nil {
			logData.Error = err.Error()
		}

		logRequest(cfg, logData)

		return err
	}
}

// logRequest handles the actual logging based on configuration
func logRequest(cfg LogConfig, data LogData) {
	jsonData, _ := json.Marshal(data)
	logMessage := string(jsonData)

	// Console logging
	if cfg.Console {
		log.Println(logMessage)
	}

	// File logging
	if cfg.File {
		logToFile(cfg.LogFilePath, logMessage)
	}

	// Database audit trail
	if cfg.Persist && Models.DB != nil {
		entry := Models.AuditLog{
			Timestamp: data.Timestamp,
			Method:    data.Method,
			Path:      data.Path,
			Status:    data.Status,
			LatencyMs: data.Latency.Milliseconds(),
			IP:        data.IP,
			UserID:    data.UserID,
			Username:  data.Username,
			UserAgent: data.UserAgent,
			Error:     data.Error,
		}
		if err := Models.DB.Create(&entry).Error; err != nil {
			log.Printf("Error persisting audit log: %v\n", err)
		}
	}
}

// logToFile appends the message to the log file
func logToFile(path, message string) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Error opening log file: %v\n", err)
		return
	}
	defer file.Close()

	if _, err := file.WriteString(message + "\n"); err != nil {
		log.Printf("Error writing to log file: %v\n", err)
	}
}
