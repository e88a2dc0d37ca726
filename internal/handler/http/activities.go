package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/clawdock/clawdock/internal/logger"
	"github.com/clawdock/clawdock/models"
)

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter, err := activityFilterFromQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listActivities").Msg("invalid query parameters")
		h.writeError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	entries, err := h.services.ActivityService.ListActivities(r.Context(), filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listActivities").Msg("error listing activities")
		h.writeError(w, http.StatusInternalServerError, "error listing activities")
		return
	}

	h.writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) recordActivity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body struct {
		User     string            `json:"user"`
		Activity string            `json:"activity"`
		Source   string            `json:"source"`
		Details  map[string]string `json:"details"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.recordActivity").Msg("Invalid JSON was passed")
		h.writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	entry, err := h.services.ActivityService.RecordActivity(r.Context(), body.User, body.Activity, body.Source, body.Details)
	if err != nil {
		status, message := mapServiceError(err)
		log.Err(err).Str("func", "*Handler.recordActivity").Msg("error recording activity")
		h.writeError(w, status, message)
		return
	}

	h.writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.writeError(w, http.StatusBadRequest, "invalid days parameter")
			return
		}
		days = parsed
	}

	stats, err := h.services.ActivityService.GetActivityStats(r.Context(), days)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getStats").Msg("error getting activity stats")
		h.writeError(w, http.StatusInternalServerError, "error getting activity stats")
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

func activityFilterFromQuery(r *http.Request) (models.ActivityFilter, error) {
	query := r.URL.Query()

	filter := models.ActivityFilter{
		User: query.Get("user"),
		Type: query.Get("type"),
	}

	if raw := query.Get("start"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.ActivityFilter{}, err
		}
		filter.Start = start
	}
	if raw := query.Get("end"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.ActivityFilter{}, err
		}
		filter.End = end
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return models.ActivityFilter{}, err
		}
		filter.Limit = limit
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return models.ActivityFilter{}, err
		}
		filter.Offset = offset
	}

	return filter, nil
}
