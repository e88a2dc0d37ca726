// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package activity persists user activity entries as JSONL files, one
// file per UTC day, and answers filtered queries and statistics over
// them. The format is append-only and line-oriented so entries survive
// partially written files and can be inspected with standard tools.
package activity

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clawdock/clawdock/internal/logger"
	"github.com/clawdock/clawdock/models"
)

const (
	logFilePrefix = "activities_"
	logFileSuffix = ".jsonl"
	logFileDate   = "2006-01-02"

	defaultListLimit = 100
)

// descriptions maps known activity types to their human-readable
// descriptions. Unknown types pass through as their own description.
var descriptions = map[string]string{
	"login":         "User logged in",
	"logout":        "User logged out",
	"config_change": "Configuration changed",
	"input_change":  "Input value changed",
	"save":          "Data saved",
	"load":          "Data loaded",
	"error":         "Error occurred",
	"warning":       "Warning issued",
	"info":          "Informational event",
}

// fileLog is the JSONL-file implementation of [Log].
type fileLog struct {
	dir     string
	enabled bool

	logger *logger.Logger
	now    func() time.Time
}

// NewFileLog constructs a [Log] writing below dir. The directory is
// created on first use. A disabled log accepts Record calls and drops
// them.
func NewFileLog(dir string, enabled bool, logger *logger.Logger) Log {
	return &fileLog{
		dir:     dir,
		enabled: enabled,
		logger:  logger,
		now:     time.Now,
	}
}

func (f *fileLog) Record(_ context.Context, user, activityType, source string, details map[string]string) (models.Activity, error) {
	if !f.enabled {
		return models.Activity{}, nil
	}

	if details == nil {
		details = map[string]string{}
	}
	description, ok := descriptions[activityType]
	if !ok {
		description = activityType
	}

	entry := models.Activity{
		ID:          uuid.NewString(),
		Timestamp:   f.now().UTC(),
		User:        user,
		Activity:    activityType,
		Description: description,
		Source:      source,
		Details:     details,
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return models.Activity{}, fmt.Errorf("creating activity log dir: %w", err)
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return models.Activity{}, fmt.Errorf("encoding activity entry: %w", err)
	}

	path := f.currentLogFile()
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return models.Activity{}, fmt.Errorf("opening activity log file: %w", err)
	}
	defer file.Close()

	if _, err = file.Write(append(line, '\n')); err != nil {
		return models.Activity{}, fmt.Errorf("appending activity entry: %w", err)
	}

	return entry, nil
}

func (f *fileLog) List(_ context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	files, err := filepath.Glob(filepath.Join(f.dir, logFilePrefix+"*"+logFileSuffix))
	if err != nil {
		return nil, fmt.Errorf("globbing activity log files: %w", err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(files)))

	entries := make([]models.Activity, 0)
	for _, path := range files {
		fileEntries, err := f.readLogFile(path, filter)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fileEntries...)
	}

	// newest first across all files
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := filter.Offset
	if offset > len(entries) {
		offset = len(entries)
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}

	return entries[offset:end], nil
}

func (f *fileLog) readLogFile(path string, filter models.ActivityFilter) ([]models.Activity, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening activity log file: %w", err)
	}
	defer file.Close()

	entries := make([]models.Activity, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry models.Activity
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			// a torn or hand-edited line must not break the query
			f.logger.Warn().Str("file", path).Msg("skipping malformed activity line")
			continue
		}

		if matchesFilter(entry, filter) {
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading activity log file: %w", err)
	}

	return entries, nil
}

func matchesFilter(entry models.Activity, filter models.ActivityFilter) bool {
	if filter.User != "" && entry.User != filter.User {
		return false
	}
	if filter.Type != "" && entry.Activity != filter.Type {
		return false
	}
	if !filter.Start.IsZero() && entry.Timestamp.Before(filter.Start) {
		return false
	}
	if !filter.End.IsZero() && entry.Timestamp.After(filter.End) {
		return false
	}
	return true
}

func (f *fileLog) currentLogFile() string {
	day := f.now().UTC().Format(logFileDate)
	return filepath.Join(f.dir, logFilePrefix+day+logFileSuffix)
}
