package service

import (
	"context"

	"github.com/clawdock/clawdock/models"
)

// ActivityService exposes the activity log to the transport layer.
type ActivityService interface {
	RecordActivity(ctx context.Context, user, activityType, source string, details map[string]string) (models.Activity, error)
	ListActivities(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error)
	GetActivityStats(ctx context.Context, days int) (models.ActivityStats, error)
}

// AppInfoService provides application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
