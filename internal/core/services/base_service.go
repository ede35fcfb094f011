package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/currency_converter_app/internal/middleware"
)

// BaseService carries the fallback logger shared by every converter service.
type BaseService struct {
	Logger *slog.Logger
}

// GetLogger prefers the request-scoped logger, then the service logger, then slog.Default.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l := middleware.GetLoggerFromCtx(ctx); l != nil {
			return l
		}
	}
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *BaseService) emit(ctx context.Context, level slog.Level, err error, msg string, args []any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err != nil {
		args = append([]any{slog.String("error", err.Error())}, args...)
	}
	s.GetLogger(ctx).Log(ctx, level, msg, args...)
}

func (s *BaseService) LogError(ctx context.Context, err error, msg string, args ...any) {
	s.emit(ctx, slog.LevelError, err, msg, args)
}

// LogWarn is for failures the service recovers from.
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, args ...any) {
	s.emit(ctx, slog.LevelWarn, err, msg, args)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelInfo, nil, msg, args)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelDebug, nil, msg, args)
}
