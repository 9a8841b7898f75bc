package lantern

import "go.uber.org/zap"

// logger is shared by every Loop, Dispatcher and Camera in the process.
// lantern is single-threaded, so it is swapped without synchronization.
var (
	logger    = zap.NewNop()
	loggerSet bool
)

// SetLogger installs l as the package logger. A nil l silences logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l.Named("lantern")
	loggerSet = true
}

// Logger returns the package logger.
func Logger() *zap.Logger {
	return logger
}

// newDebugLogger builds the development logger used when RunConfig.Debug is set.
func newDebugLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
