// Package slog provides logging decorators for groomdir services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/wtlin/groomdir"
)

// Ensure LoggingShopSource implements groomdir.ShopSource.
var _ groomdir.ShopSource = (*LoggingShopSource)(nil)

// LoggingShopSource wraps a ShopSource with operational logging.
type LoggingShopSource struct {
	next   groomdir.ShopSource
	logger *slog.Logger
}

// NewLoggingShopSource creates a new LoggingShopSource.
func NewLoggingShopSource(next groomdir.ShopSource, logger *slog.Logger) *LoggingShopSource {
	return &LoggingShopSource{next: next, logger: logger}
}

// LoadShops delegates to the wrapped source and logs the operation.
func (s *LoggingShopSource) LoadShops(ctx context.Context, images map[string]string) (shops []*groomdir.Shop, err error) {
	defer func(begin time.Time) {
		s.logger.Info("listing load",
			"shops", len(shops),
			"images", len(images),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadShops(ctx, images)
}

// Ensure LoggingImageSource implements groomdir.ImageSource.
var _ groomdir.ImageSource = (*LoggingImageSource)(nil)

// LoggingImageSource wraps an ImageSource with operational logging.
type LoggingImageSource struct {
	next   groomdir.ImageSource
	logger *slog.Logger
}

// NewLoggingImageSource creates a new LoggingImageSource.
func NewLoggingImageSource(next groomdir.ImageSource, logger *slog.Logger) *LoggingImageSource {
	return &LoggingImageSource{next: next, logger: logger}
}

// LoadImages delegates to the wrapped source and logs the operation.
func (s *LoggingImageSource) LoadImages(ctx context.Context) (images map[string]string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("detail load",
			"images", len(images),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadImages(ctx)
}
