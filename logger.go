package scene

import (
	"log/slog"
	"os"
)

// sceneLogLevel controls the log level for renderer debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var sceneLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		sceneLogLevel.Set(slog.LevelDebug)
	} else {
		sceneLogLevel.Set(slog.LevelInfo)
	}
}

// sceneLogger is the package logger. Renderers use it unless WithLogger
// supplies another.
var sceneLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: sceneLogLevel}))
