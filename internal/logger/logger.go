package logger

import (
	"go.uber.org/zap"
)

// Log is the process wide logger. It is a no-op logger until Init is called
// so packages can log from tests without any setup.
var Log *zap.Logger = zap.NewNop()

// Init installs a production logger.
func Init() {
	install(zap.NewProduction())
}

// InitDevelopment installs a human readable logger with debug output enabled.
func InitDevelopment() {
	install(zap.NewDevelopment())
}

func install(l *zap.Logger, err error) {
	if err != nil {
		// Keep whatever logger we had, the app can still run without logs
		Log.Warn("Could not build logger", zap.Error(err))
		return
	}
	Log = l
}

// Set replaces the process logger, mostly used by tests.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	Log = l
}

// Sync flushes buffered entries. Errors from syncing stdout/stderr are ignored.
func Sync() {
	_ = Log.Sync()
}
