package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/timetrack/internal/service"
	"github.com/limbo/timetrack/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestBuildTaskView(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	runningSince := now.Add(-600 * time.Second)
	task := &entity.TrackedTask{
		Task: entity.Task{
			ID:            uuid.New(),
			Title:         "deep work",
			Date:          time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			TargetSeconds: 3600,
		},
		TaskTotals: entity.TaskTotals{
			HasActiveTimer:   true,
			ActiveStartTime:  &runningSince,
			TotalTimeSeconds: 1800,
		},
	}
	view := service.BuildTaskView(task, now)
	assert.Equal(t, 2400, view.ProgressSeconds)
	assert.Equal(t, 1200, view.RemainingSeconds)
	assert.Equal(t, 66.67, view.ProgressPercent)
	assert.False(t, view.TargetReached)
	assert.Equal(t, "2025-03-01", view.Date)
	assert.Equal(t, 1800, view.TotalTimeSeconds)
	assert.Equal(t, &runningSince, view.ActiveEntryStartTime)
}

func TestProgressBounds(t *testing.T) {
	now := time.Now()
	testCases := []struct {
		Desc     string
		Target   int
		Tracked  int
		Percent  float64
		Reached  bool
		Remained int
	}{
		{Desc: "zero target", Target: 0, Tracked: 500, Percent: 0, Reached: false, Remained: 0},
		{Desc: "negative target", Target: -10, Tracked: 500, Percent: 0, Reached: false, Remained: 0},
		{Desc: "nothing tracked", Target: 100, Tracked: 0, Percent: 0, Reached: false, Remained: 100},
		{Desc: "exactly reached", Target: 100, Tracked: 100, Percent: 100, Reached: true, Remained: 0},
		{Desc: "overshoot capped", Target: 100, Tracked: 250, Percent: 100, Reached: true, Remained: 0},
		{Desc: "half", Target: 100, Tracked: 50, Percent: 50, Reached: false, Remained: 50},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			view := service.BuildTaskView(&entity.TrackedTask{
				Task:       entity.Task{TargetSeconds: tc.Target},
				TaskTotals: entity.TaskTotals{TotalTimeSeconds: tc.Tracked},
			}, now)
			assert.Equal(t, tc.Percent, view.ProgressPercent)
			assert.Equal(t, tc.Reached, view.TargetReached)
			assert.Equal(t, tc.Remained, view.RemainingSeconds)
			assert.GreaterOrEqual(t, view.ProgressPercent, 0.0)
			assert.LessOrEqual(t, view.ProgressPercent, 100.0)
		})
	}
}

func TestRunningTimerStartedInFuture(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Minute)
	view := service.BuildTaskView(&entity.TrackedTask{
		Task:       entity.Task{TargetSeconds: 60},
		TaskTotals: entity.TaskTotals{HasActiveTimer: true, ActiveStartTime: &future, TotalTimeSeconds: 30},
	}, now)
	assert.Equal(t, 30, view.ProgressSeconds)
}
