// Package validation rejects malformed input before any storage access.
// All functions are pure: input in, normalized value or *ValidationError out.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"taskapi/internal/apperrors"
	"taskapi/internal/models"
)

const (
	titleMaxLen = 256

	defaultLimit = 20
	maxLimit     = 100
)

// Canonical 8-4-4-4-12 layout, version nibble 4, variant nibble 8/9/a/b.
var taskIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// IsTaskID reports whether s is syntactically a UUID v4.
func IsTaskID(s string) bool {
	return taskIDPattern.MatchString(s)
}

// CreateTaskRequest is the wire shape of POST /api/tasks.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

// UpdateTaskRequest is the wire shape of PUT /api/tasks/:id. Every field
// is optional; absence means "leave unchanged".
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

// ListTasksParams carries the raw query-string values of GET /api/tasks.
// An empty string means the parameter was absent.
type ListTasksParams struct {
	Status   string
	Priority string
	Limit    string
	Offset   string
}

// ListQuery is the normalized form of a validated list request.
type ListQuery struct {
	Filter models.TaskFilter
	Limit  int
	Offset int
}

// ValidateCreate checks a create payload and applies defaults for absent
// status/priority. Every violated field is reported, not just the first.
func ValidateCreate(req CreateTaskRequest) (*models.Task, *apperrors.ValidationError) {
	var fields []apperrors.FieldError

	title := strings.TrimSpace(req.Title)
	if title == "" {
		fields = append(fields, apperrors.FieldError{Field: "title", Message: "title is required"})
	} else if utf8.RuneCountInString(title) > titleMaxLen {
		fields = append(fields, apperrors.FieldError{
			Field:   "title",
			Message: fmt.Sprintf("title must be at most %d characters", titleMaxLen),
		})
	}

	status := models.StatusTodo
	if req.Status != nil {
		status = models.TaskStatus(*req.Status)
		if !status.Valid() {
			fields = append(fields, apperrors.FieldError{
				Field:   "status",
				Message: "status must be one of: todo, in_progress, done",
			})
		}
	}

	priority := models.PriorityMedium
	if req.Priority != nil {
		priority = models.TaskPriority(*req.Priority)
		if !priority.Valid() {
			fields = append(fields, apperrors.FieldError{
				Field:   "priority",
				Message: "priority must be one of: low, medium, high",
			})
		}
	}

	if len(fields) > 0 {
		return nil, apperrors.NewValidation(fields...)
	}

	return &models.Task{
		Title:       title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
	}, nil
}

// ValidateUpdate checks a partial update. Defaults are never applied; a
// request with zero recognized fields is a client error, not a no-op.
func ValidateUpdate(req UpdateTaskRequest) (models.TaskUpdate, *apperrors.ValidationError) {
	var upd models.TaskUpdate
	var fields []apperrors.FieldError

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		switch {
		case title == "":
			fields = append(fields, apperrors.FieldError{Field: "title", Message: "title must not be empty"})
		case utf8.RuneCountInString(title) > titleMaxLen:
			fields = append(fields, apperrors.FieldError{
				Field:   "title",
				Message: fmt.Sprintf("title must be at most %d characters", titleMaxLen),
			})
		default:
			upd.Title = &title
		}
	}
	if req.Description != nil {
		upd.Description = req.Description
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		if !status.Valid() {
			fields = append(fields, apperrors.FieldError{
				Field:   "status",
				Message: "status must be one of: todo, in_progress, done",
			})
		} else {
			upd.Status = &status
		}
	}
	if req.Priority != nil {
		priority := models.TaskPriority(*req.Priority)
		if !priority.Valid() {
			fields = append(fields, apperrors.FieldError{
				Field:   "priority",
				Message: "priority must be one of: low, medium, high",
			})
		} else {
			upd.Priority = &priority
		}
	}

	if len(fields) > 0 {
		return models.TaskUpdate{}, apperrors.NewValidation(fields...)
	}
	if req.Title == nil && req.Description == nil && req.Status == nil && req.Priority == nil {
		return models.TaskUpdate{}, apperrors.EmptyUpdate()
	}
	return upd, nil
}

// ValidateListQuery coerces and bounds-checks list parameters. Out-of-range
// limit/offset values are rejected, not clamped.
func ValidateListQuery(params ListTasksParams) (ListQuery, *apperrors.ValidationError) {
	q := ListQuery{Limit: defaultLimit, Offset: 0}
	var fields []apperrors.FieldError

	if params.Status != "" {
		status := models.TaskStatus(params.Status)
		if !status.Valid() {
			fields = append(fields, apperrors.FieldError{
				Field:   "status",
				Message: "status must be one of: todo, in_progress, done",
			})
		} else {
			q.Filter.Status = &status
		}
	}
	if params.Priority != "" {
		priority := models.TaskPriority(params.Priority)
		if !priority.Valid() {
			fields = append(fields, apperrors.FieldError{
				Field:   "priority",
				Message: "priority must be one of: low, medium, high",
			})
		} else {
			q.Filter.Priority = &priority
		}
	}
	if params.Limit != "" {
		n, err := strconv.Atoi(params.Limit)
		if err != nil || n < 1 || n > maxLimit {
			fields = append(fields, apperrors.FieldError{
				Field:   "limit",
				Message: fmt.Sprintf("limit must be an integer between 1 and %d", maxLimit),
			})
		} else {
			q.Limit = n
		}
	}
	if params.Offset != "" {
		n, err := strconv.Atoi(params.Offset)
		if err != nil || n < 0 {
			fields = append(fields, apperrors.FieldError{
				Field:   "offset",
				Message: "offset must be a non-negative integer",
			})
		} else {
			q.Offset = n
		}
	}

	if len(fields) > 0 {
		return ListQuery{}, apperrors.NewValidation(fields...)
	}
	return q, nil
}
