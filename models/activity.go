package models

import "time"

// Activity is one recorded user activity entry as stored in the JSONL
// activity log and served by the admin API.
type Activity struct {
	ID          string            `json:"id"`
	Timestamp   time.Time         `json:"timestamp"`
	User        string            `json:"user"`
	Activity    string            `json:"activity"`
	Description string            `json:"description"`
	Source      string            `json:"source"`
	Details     map[string]string `json:"details"`
}

// ActivityFilter narrows an activity query. Zero values mean "no filter";
// Limit defaults to 100 when unset.
type ActivityFilter struct {
	User  string
	Type  string
	Start time.Time
	End   time.Time

	Limit  int
	Offset int
}

// ActivityStats summarizes recent activity over a trailing period.
type ActivityStats struct {
	TotalActivities int            `json:"total_activities"`
	UniqueUsers     int            `json:"unique_users"`
	ActivityTypes   map[string]int `json:"activity_types"`
	TopUsers        map[string]int `json:"top_users"`
	PeriodDays      int            `json:"period_days"`
}
