package activity

import (
	"context"
	"sort"

	"github.com/clawdock/clawdock/models"
)

const (
	statsScanLimit = 10000
	topUsersLimit  = 10
)

func (f *fileLog) Stats(ctx context.Context, days int) (models.ActivityStats, error) {
	entries, err := f.List(ctx, models.ActivityFilter{Limit: statsScanLimit})
	if err != nil {
		return models.ActivityStats{}, err
	}

	cutoff := f.now().UTC().AddDate(0, 0, -days)

	stats := models.ActivityStats{
		ActivityTypes: make(map[string]int),
		TopUsers:      make(map[string]int),
		PeriodDays:    days,
	}

	userCounts := make(map[string]int)
	for _, entry := range entries {
		if !entry.Timestamp.After(cutoff) {
			continue
		}
		stats.TotalActivities++
		stats.ActivityTypes[entry.Activity]++
		userCounts[entry.User]++
	}
	stats.UniqueUsers = len(userCounts)

	// keep only the ten most active users
	users := make([]string, 0, len(userCounts))
	for user := range userCounts {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		if userCounts[users[i]] != userCounts[users[j]] {
			return userCounts[users[i]] > userCounts[users[j]]
		}
		return users[i] < users[j]
	})
	if len(users) > topUsersLimit {
		users = users[:topUsersLimit]
	}
	for _, user := range users {
		stats.TopUsers[user] = userCounts[user]
	}

	return stats, nil
}
