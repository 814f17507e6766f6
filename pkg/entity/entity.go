package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the day-granularity format used in query params and payloads.
const DateLayout = "2006-01-02"

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// Scope is an owner bucket: an authenticated user or the shared anonymous bucket.
// The zero value is the anonymous bucket.
type Scope struct {
	UserID *uuid.UUID
}

func AnonymousScope() Scope {
	return Scope{}
}

func UserScope(uid uuid.UUID) Scope {
	return Scope{UserID: &uid}
}

func (s Scope) IsAnonymous() bool {
	return s.UserID == nil
}

// Key identifies the scope in lock keys and logs.
func (s Scope) Key() string {
	if s.UserID == nil {
		return "anonymous"
	}
	return "user:" + s.UserID.String()
}

type HabitTemplate struct {
	ID                   uuid.UUID  `json:"id"`
	UserID               *uuid.UUID `json:"-"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	DefaultTargetSeconds int        `json:"default_target_seconds"`
	IsActive             bool       `json:"is_active"`
	CreatedAt            time.Time  `json:"created_at"`
}

type Task struct {
	ID              uuid.UUID
	UserID          *uuid.UUID
	HabitTemplateID *uuid.UUID
	Title           string
	Description     string
	Date            time.Time
	TargetSeconds   int
	Completed       bool
	CreatedAt       time.Time
}

// TaskTotals are the time aggregates fetched alongside a task.
type TaskTotals struct {
	HasActiveTimer   bool
	ActiveStartTime  *time.Time
	TotalTimeSeconds int
}

type TrackedTask struct {
	Task
	TaskTotals
}

type TimeEntry struct {
	ID              uuid.UUID  `json:"id"`
	TaskID          uuid.UUID  `json:"task"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationSeconds int        `json:"duration_seconds"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (te *TimeEntry) Running() bool {
	return te.EndTime == nil
}

type TaskStats struct {
	Date      *string `json:"date"`
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
}

type WorldTime struct {
	Timezone  string `json:"timezone"`
	Datetime  string `json:"datetime"`
	UTCOffset string `json:"utc_offset"`
}

// Day truncates t to midnight UTC of its calendar date in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
