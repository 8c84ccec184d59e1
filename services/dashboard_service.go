package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/ascent-cms/logger"
)

// DashboardService summarizes the content collections for the admin header
type DashboardService struct {
	collections []Collection
	log         *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(collections []Collection, log *zap.Logger) *DashboardService {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardService{collections: collections, log: log}
}

// Counts returns the row count of every collection, keyed by slug.
// A failed count is reported as zero.
func (s *DashboardService) Counts(ctx context.Context) map[string]int64 {
	counts := make(map[string]int64, len(s.collections))
	for _, c := range s.collections {
		slug := c.Schema().Slug
		n, err := c.Count(ctx)
		if err != nil {
			logger.FromContext(ctx, s.log).Warn("Failed to count collection", zap.String("collection", slug), zap.Error(err))
			n = 0
		}
		counts[slug] = n
	}
	return counts
}
