package services

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/skogge/CountryCurrencyPicker/internal/core/ports/platform"
	"github.com/skogge/CountryCurrencyPicker/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// sortByName orders items by the accent-stripped, lower-cased value of name.
// The sort is stable, so equal keys keep their enumeration order.
func sortByName[T any](items []T, name func(T) string, normalizer platform.TextNormalizer) {
	keys := make(map[string]string, len(items))
	key := func(item T) string {
		n := name(item)
		k, ok := keys[n]
		if !ok {
			k = normalizer.Key(n)
			keys[n] = k
		}
		return k
	}
	slices.SortStableFunc(items, func(a, b T) int {
		return strings.Compare(key(a), key(b))
	})
}

// normalizeCode trims and upper-cases an ISO code.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
