package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskView is a task with its read-only progress fields, as served by the API.
type TaskView struct {
	ID                   uuid.UUID  `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	HabitTemplateID      *uuid.UUID `json:"habit_template_id"`
	Date                 string     `json:"date"`
	TargetSeconds        int        `json:"target_seconds"`
	Completed            bool       `json:"completed"`
	CreatedAt            time.Time  `json:"created_at"`
	HasActiveTimer       bool       `json:"has_active_timer"`
	ActiveEntryStartTime *time.Time `json:"active_entry_start_time"`
	TotalTimeSeconds     int        `json:"total_time_seconds"`
	ProgressSeconds      int        `json:"progress_seconds"`
	RemainingSeconds     int        `json:"remaining_seconds"`
	ProgressPercent      float64    `json:"progress_percent"`
	TargetReached        bool       `json:"target_reached"`
}

type Dashboard struct {
	Date              string           `json:"date"`
	Summary           DashboardSummary `json:"summary"`
	TasksByStatus     []StatusCount    `json:"tasks_by_status"`
	TimePerTask       []TaskTime       `json:"time_per_task"`
	ProductivityTrend []DayTotal       `json:"productivity_trend"`
}

type DashboardSummary struct {
	TasksCount          int `json:"tasks_count"`
	TasksCompleted      int `json:"tasks_completed"`
	TargetsReached      int `json:"targets_reached"`
	TotalTargetSeconds  int `json:"total_target_seconds"`
	TotalTrackedSeconds int `json:"total_tracked_seconds"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type TaskTime struct {
	TaskID        uuid.UUID `json:"task_id"`
	Title         string    `json:"title"`
	TargetSeconds int       `json:"target_seconds"`
	TotalTime     int       `json:"total_time"`
}

type DayTotal struct {
	Date      string `json:"date"`
	TotalTime int    `json:"total_time"`
}

// ElapsedSeconds is the whole number of seconds from start to end, floored at zero.
func ElapsedSeconds(start, end time.Time) int {
	secs := int(end.Sub(start) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}
