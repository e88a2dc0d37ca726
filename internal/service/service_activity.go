package service

import (
	"context"
	"fmt"

	"github.com/clawdock/clawdock/internal/activity"
	"github.com/clawdock/clawdock/internal/logger"
	"github.com/clawdock/clawdock/models"
)

type activityService struct {
	log    activity.Log
	logger *logger.Logger
}

// NewActivityService wraps the activity log for the transport layer.
func NewActivityService(log activity.Log, logger *logger.Logger) ActivityService {
	return &activityService{log: log, logger: logger}
}

func (s *activityService) RecordActivity(ctx context.Context, user, activityType, source string, details map[string]string) (models.Activity, error) {
	if user == "" {
		return models.Activity{}, ErrEmptyUser
	}
	if activityType == "" {
		return models.Activity{}, ErrEmptyActivityType
	}
	if source == "" {
		source = "system"
	}

	entry, err := s.log.Record(ctx, user, activityType, source, details)
	if err != nil {
		return models.Activity{}, fmt.Errorf("recording activity: %w", err)
	}

	return entry, nil
}

func (s *activityService) ListActivities(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	entries, err := s.log.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}

	return entries, nil
}

func (s *activityService) GetActivityStats(ctx context.Context, days int) (models.ActivityStats, error) {
	if days <= 0 {
		days = 7
	}

	stats, err := s.log.Stats(ctx, days)
	if err != nil {
		return models.ActivityStats{}, fmt.Errorf("getting activity stats: %w", err)
	}

	return stats, nil
}
