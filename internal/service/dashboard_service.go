package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/timetrack/internal/repository"
	"github.com/limbo/timetrack/pkg/entity"
)

type DashboardService struct {
	tasksRepo   repository.TasksRepositoryI
	entriesRepo repository.TimeEntriesRepositoryI
	loc         *time.Location
}

func NewDashboardService(tasksRepo repository.TasksRepositoryI, entriesRepo repository.TimeEntriesRepositoryI, loc *time.Location) *DashboardService {
	return &DashboardService{
		tasksRepo:   tasksRepo,
		entriesRepo: entriesRepo,
		loc:         loc,
	}
}

func (ds *DashboardService) Dashboard(ctx context.Context, scope entity.Scope, date time.Time) (*entity.Dashboard, error) {
	tasks, err := ds.tasksRepo.ListByDate(ctx, scope, date)
	if err != nil {
		return nil, fmt.Errorf("listing dashboard tasks: %w", err)
	}
	entries, err := ds.entriesRepo.ListByTaskDate(ctx, scope, date)
	if err != nil {
		return nil, fmt.Errorf("listing dashboard time entries: %w", err)
	}
	return BuildDashboard(date, tasks, entries, ds.loc), nil
}

// BuildDashboard aggregates one day of tasks and their time entries. Only settled
// durations count, a running entry contributes zero.
func BuildDashboard(date time.Time, tasks []*entity.TrackedTask, entries []*entity.TimeEntry, loc *time.Location) *entity.Dashboard {
	dash := &entity.Dashboard{
		Date:              date.Format(entity.DateLayout),
		TimePerTask:       make([]entity.TaskTime, 0),
		ProductivityTrend: make([]entity.DayTotal, 0),
	}
	byID := make(map[uuid.UUID]*entity.TrackedTask, len(tasks))
	for _, task := range tasks {
		byID[task.ID] = task
		dash.Summary.TasksCount++
		dash.Summary.TotalTargetSeconds += task.TargetSeconds
		if task.Completed {
			dash.Summary.TasksCompleted++
		}
	}
	dash.TasksByStatus = []entity.StatusCount{
		{Status: "completed", Count: dash.Summary.TasksCompleted},
		{Status: "pending", Count: dash.Summary.TasksCount - dash.Summary.TasksCompleted},
	}

	perTask := make(map[uuid.UUID]*entity.TaskTime)
	perDay := make(map[string]int)
	for _, entry := range entries {
		task, ok := byID[entry.TaskID]
		if !ok {
			continue
		}
		settled := 0
		if !entry.Running() {
			settled = entry.DurationSeconds
		}
		dash.Summary.TotalTrackedSeconds += settled
		tt, ok := perTask[task.ID]
		if !ok {
			tt = &entity.TaskTime{TaskID: task.ID, Title: task.Title, TargetSeconds: task.TargetSeconds}
			perTask[task.ID] = tt
		}
		tt.TotalTime += settled
		perDay[entry.StartTime.In(loc).Format(entity.DateLayout)] += settled
	}

	for _, tt := range perTask {
		if targetReached(tt.TotalTime, tt.TargetSeconds) {
			dash.Summary.TargetsReached++
		}
		dash.TimePerTask = append(dash.TimePerTask, *tt)
	}
	sort.Slice(dash.TimePerTask, func(i, j int) bool {
		a, b := dash.TimePerTask[i], dash.TimePerTask[j]
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.TaskID.String() < b.TaskID.String()
	})

	for day, total := range perDay {
		dash.ProductivityTrend = append(dash.ProductivityTrend, entity.DayTotal{Date: day, TotalTime: total})
	}
	sort.Slice(dash.ProductivityTrend, func(i, j int) bool {
		return dash.ProductivityTrend[i].Date < dash.ProductivityTrend[j].Date
	})
	return dash
}
