package logger

import "go.uber.org/zap"

var Log *zap.Logger

// Init sets up the global logger. Safe to call more than once.
func Init() {
	if Log != nil {
		return
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		// Logging must never take the viewer down
		Log = zap.NewNop()
		return
	}
	Log = logger
}
