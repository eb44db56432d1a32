package diligent

import (
	"context"
	"io"

	"github.com/vkngwrapper/diligent/driver"
	"golang.org/x/exp/slog"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard))

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return discardLogger
	}
	return logger
}

// MessageCallback receives the debug messages the engine emits. Function and file are
// empty and line is 0 when the engine does not attribute the message.
type MessageCallback func(severity DebugMessageSeverity, message, function, file string, line int)

func (cb MessageCallback) native() driver.MessageCallback {
	if cb == nil {
		return nil
	}
	return func(severity driver.DebugMessageSeverity, message, function, file string, line int) {
		cb(debugMessageSeverityFromNative(severity), message, function, file, line)
	}
}

var severityLevels = map[DebugMessageSeverity]slog.Level{
	DebugMessageSeverityInfo:       slog.LevelInfo,
	DebugMessageSeverityWarning:    slog.LevelWarn,
	DebugMessageSeverityError:      slog.LevelError,
	DebugMessageSeverityFatalError: slog.LevelError,
}

// SlogMessageCallback routes engine debug messages to logger. Fatal errors are logged
// at error level with a fatal attribute.
func SlogMessageCallback(logger *slog.Logger) MessageCallback {
	logger = loggerOrDiscard(logger)
	return func(severity DebugMessageSeverity, message, function, file string, line int) {
		level, ok := severityLevels[severity]
		if !ok {
			level = slog.LevelError
		}

		attrs := make([]slog.Attr, 0, 4)
		if function != "" {
			attrs = append(attrs, slog.String("function", function))
		}
		if file != "" {
			attrs = append(attrs, slog.String("file", file), slog.Int("line", line))
		}
		if severity == DebugMessageSeverityFatalError {
			attrs = append(attrs, slog.Bool("fatal", true))
		}

		logger.LogAttrs(context.Background(), level, message, attrs...)
	}
}
