package errors

import (
	"context"
	"log/slog"

	"github.com/go-drift/picker/pkg/logging"
)

// LogHandler is an ErrorHandler that writes through slog.
type LogHandler struct {
	// Logger receives the records. Nil means slog.Default().
	Logger *slog.Logger
	// Verbose adds stack traces to panic records.
	Verbose bool
}

// HandleError logs a PickerError at warning level.
func (h *LogHandler) HandleError(err *PickerError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "error", err.Err}
	if err.Column != "" {
		attrs = append(attrs, "column", err.Column)
	}
	h.logger().WarnContext(ctx(), "picker error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().ErrorContext(ctx(), "picker panic", attrs...)
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func ctx() context.Context {
	return logging.PackageCtx("errors")
}
