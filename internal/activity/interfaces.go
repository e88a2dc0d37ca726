package activity

import (
	"context"

	"github.com/clawdock/clawdock/models"
)

// Log records and queries user activity entries.
type Log interface {
	// Record appends one activity entry and returns it. When the log is
	// disabled it returns the zero Activity and no error.
	Record(ctx context.Context, user, activityType, source string, details map[string]string) (models.Activity, error)

	// List returns entries matching the filter, newest first.
	List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error)

	// Stats aggregates entries of the trailing days into summary counts.
	Stats(ctx context.Context, days int) (models.ActivityStats, error)
}
