// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Logger provides structured logging
	Logger Logger
}

// LoggerOrNop returns the configured logger, or one that discards everything
func (d Dependencies) LoggerOrNop() Logger {
	if d.Logger == nil {
		return nopLogger{}
	}
	return d.Logger
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
