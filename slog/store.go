package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/wtlin/groomdir"
)

// Ensure LoggingSiteStore implements groomdir.SiteStore.
var _ groomdir.SiteStore = (*LoggingSiteStore)(nil)

// LoggingSiteStore wraps a SiteStore with operational logging.
type LoggingSiteStore struct {
	next   groomdir.SiteStore
	logger *slog.Logger
	saved  int
	begin  time.Time
}

// NewLoggingSiteStore creates a new LoggingSiteStore.
func NewLoggingSiteStore(next groomdir.SiteStore, logger *slog.Logger) *LoggingSiteStore {
	return &LoggingSiteStore{next: next, logger: logger, begin: time.Now()}
}

// Save delegates to the wrapped store, logging each page at debug level.
func (s *LoggingSiteStore) Save(ctx context.Context, page *groomdir.Page) error {
	err := s.next.Save(ctx, page)
	if err == nil {
		s.saved++
	}
	s.logger.Debug("page save",
		"path", page.Path,
		"bytes", len(page.Content),
		"err", err,
	)
	return err
}

// Commit delegates to the wrapped store and logs the publish.
func (s *LoggingSiteStore) Commit() (err error) {
	defer func() {
		s.logger.Info("site commit",
			"pages", s.saved,
			"duration", time.Since(s.begin),
			"err", err,
		)
	}()
	return s.next.Commit()
}

// Abort delegates to the wrapped store and logs the discard.
func (s *LoggingSiteStore) Abort() (err error) {
	defer func() {
		s.logger.Info("site abort",
			"pages", s.saved,
			"err", err,
		)
	}()
	return s.next.Abort()
}
