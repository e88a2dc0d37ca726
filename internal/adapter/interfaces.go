package adapter

import (
	"context"

	"github.com/clawdock/clawdock/models"
)

// AdminClient talks to the clawdock admin API.
type AdminClient interface {
	ListActivities(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error)
	GetStats(ctx context.Context, days int) (models.ActivityStats, error)
	RecordActivity(ctx context.Context, user, activityType, source string, details map[string]string) (models.Activity, error)
}
