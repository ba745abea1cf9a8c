package interfaces

// Logger defines the interface for logging throughout the application.
// This abstraction keeps the core free of a concrete logging library (logrus, zap, etc.)
// while maintaining a consistent interface.
//
// Example usage:
//
//	logger.Info("Declared module namespaces", map[string]interface{}{
//		"feed_type": "rss_2.0",
//		"count": 4,
//	})
//
//	logger.Error("Failed to resolve properties", map[string]interface{}{
//		"type": "*dc.Module",
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	// Debug messages are typically used for detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	// Info messages are used for general informational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Warning messages indicate potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	// Error messages indicate failures that need attention.
	Error(msg string, fields map[string]interface{})
}
