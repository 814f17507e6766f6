package service

import (
	"math"
	"time"

	"github.com/limbo/timetrack/pkg/entity"
)

// BuildTaskView computes the progress fields of task as of now. A running timer
// counts its elapsed time on top of the settled total.
func BuildTaskView(task *entity.TrackedTask, now time.Time) *entity.TaskView {
	progress := task.TotalTimeSeconds
	if task.HasActiveTimer && task.ActiveStartTime != nil {
		progress += entity.ElapsedSeconds(*task.ActiveStartTime, now)
	}
	return &entity.TaskView{
		ID:                   task.ID,
		Title:                task.Title,
		Description:          task.Description,
		HabitTemplateID:      task.HabitTemplateID,
		Date:                 task.Date.Format(entity.DateLayout),
		TargetSeconds:        task.TargetSeconds,
		Completed:            task.Completed,
		CreatedAt:            task.CreatedAt,
		HasActiveTimer:       task.HasActiveTimer,
		ActiveEntryStartTime: task.ActiveStartTime,
		TotalTimeSeconds:     task.TotalTimeSeconds,
		ProgressSeconds:      progress,
		RemainingSeconds:     max(0, task.TargetSeconds-progress),
		ProgressPercent:      progressPercent(progress, task.TargetSeconds),
		TargetReached:        targetReached(progress, task.TargetSeconds),
	}
}

// progressPercent is progress of target in [0, 100], rounded to two decimals. Zero target gives 0.
func progressPercent(progress, target int) float64 {
	if target <= 0 {
		return 0
	}
	percent := math.Min(100, float64(progress)/float64(target)*100)
	return math.Round(percent*100) / 100
}

func targetReached(progress, target int) bool {
	return target > 0 && progress >= target
}
