package logger

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
)

// Logger logs every handled HTTP request
type Logger struct {
	log *zap.Logger
}

// New creates the request logging middleware
func New(log *zap.Logger) *Logger {
	return &Logger{
		log: log.With(zap.String("component", "http_logger")),
	}
}

// Middleware returns the huma middleware func
func (l *Logger) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		method := ctx.Method()
		path := ctx.URL().Path
		remoteAddr := ctx.RemoteAddr()

		next(ctx)

		l.log.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", ctx.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote_addr", remoteAddr),
		)
	}
}
