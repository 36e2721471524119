package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/api_context"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const serviceName = "portfolio-ms"

var std *slog.Logger

// requestAttrHandler stamps every record with the chi request id (when the
// record was logged while serving a request) and the admin subject, or
// "system" for unauthenticated and background work.
type requestAttrHandler struct{ h slog.Handler }

func (r requestAttrHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return r.h.Enabled(ctx, lvl)
}

func (r requestAttrHandler) Handle(ctx context.Context, rec slog.Record) error {
	if reqID := chimw.GetReqID(ctx); reqID != "" {
		rec.AddAttrs(slog.String("req", reqID))
	}
	uid, ok := api_context.AuthUserIDFromContext(ctx)
	if !ok {
		uid = "system"
	}
	rec.AddAttrs(slog.String("uid", uid))
	return r.h.Handle(ctx, rec)
}

func (r requestAttrHandler) WithAttrs(a []slog.Attr) slog.Handler {
	return requestAttrHandler{h: r.h.WithAttrs(a)}
}

func (r requestAttrHandler) WithGroup(n string) slog.Handler {
	return requestAttrHandler{h: r.h.WithGroup(n)}
}

// Init configures the process-wide logger from the environment:
//
//	LOG_FORMAT    json|text (default: json)
//	LOG_LEVEL     debug|info|warn|error (default: info)
//	LOG_SOURCE    true|false (default: false)
func Init() {
	InitWriter(os.Stdout)
}

// InitWriter is Init with an explicit destination.
func InitWriter(w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(os.Getenv("LOG_LEVEL")),
		AddSource: parseBool(os.Getenv("LOG_SOURCE")),
	}

	var base slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "text") {
		base = slog.NewTextHandler(w, opts)
	} else {
		base = slog.NewJSONHandler(w, opts)
	}

	std = slog.New(requestAttrHandler{h: base}).With("svc", serviceName)
	slog.SetDefault(std)

	// third-party packages that still use the log package end up in the same stream
	log.SetFlags(0)
	log.SetOutput(slog.NewLogLogger(base, slog.LevelInfo).Writer())
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}

func current() *slog.Logger {
	if std != nil {
		return std
	}
	return slog.Default()
}

func logAt(ctx context.Context, lvl slog.Level, msg string, attrs ...any) {
	current().Log(ctx, lvl, msg, attrs...)
}

func Info(ctx context.Context, msg string, attrs ...any)  { logAt(ctx, slog.LevelInfo, msg, attrs...) }
func Warn(ctx context.Context, msg string, attrs ...any)  { logAt(ctx, slog.LevelWarn, msg, attrs...) }
func Error(ctx context.Context, msg string, attrs ...any) { logAt(ctx, slog.LevelError, msg, attrs...) }
func Debug(ctx context.Context, msg string, attrs ...any) { logAt(ctx, slog.LevelDebug, msg, attrs...) }

func Infof(ctx context.Context, format string, a ...any) {
	logAt(ctx, slog.LevelInfo, fmt.Sprintf(format, a...))
}

func Warnf(ctx context.Context, format string, a ...any) {
	logAt(ctx, slog.LevelWarn, fmt.Sprintf(format, a...))
}

func Errorf(ctx context.Context, format string, a ...any) {
	logAt(ctx, slog.LevelError, fmt.Sprintf(format, a...))
}

func Debugf(ctx context.Context, format string, a ...any) {
	logAt(ctx, slog.LevelDebug, fmt.Sprintf(format, a...))
}
