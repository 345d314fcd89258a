package dashboard

import (
	"time"

	"dial-cli/internal/model"
	"dial-cli/internal/period"
)

// SampleForest is a small local plan used before the first sync and by
// --demo.
func SampleForest(now time.Time) model.Forest {
	day := period.Today(now).Period()
	week := period.Of(period.Week, now).Period()
	month := period.Of(period.Month, now).Period()

	task := func(id, title string, typ model.PeriodType, p model.Period, st model.TaskStatus, pr model.TaskPriority, score int, tags ...string) *model.Task {
		return &model.Task{
			ID:        id,
			Title:     title,
			Type:      typ,
			Period:    p,
			Status:    st,
			Priority:  pr,
			Score:     score,
			Tags:      tags,
			UserID:    "demo",
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	client := task("sample-1", "Ship terminal client", model.PeriodMonthly, month, model.StatusInProgress, model.PriorityHigh, 20, "project")
	tree := task("sample-1-1", "Collapsible task tree", model.PeriodWeekly, week, model.StatusCompleted, model.PriorityHigh, 8, "tui")
	sync := task("sample-1-2", "Load today's plan from the server", model.PeriodWeekly, week, model.StatusInProgress, model.PriorityMedium, 5, "api")
	retry := task("sample-1-2-1", "Show load errors in the status line", model.PeriodDaily, day, model.StatusNotStarted, model.PriorityMedium, 2)
	stats := task("sample-1-3", "Execution stats view", model.PeriodMonthly, month, model.StatusNotStarted, model.PriorityLow, 3)

	sync.Children = []*model.Task{retry}
	client.Children = []*model.Task{tree, sync, stats}

	review := task("sample-2", "Weekly review", model.PeriodWeekly, week, model.StatusNotStarted, model.PriorityMedium, 3, "habit")
	walk := task("sample-3", "Evening walk", model.PeriodDaily, day, model.StatusNotStarted, model.PriorityLow, 1, "health")

	forest := model.Forest{client, review, walk}
	forest.Walk(func(t *model.Task, depth int) bool {
		t.TreeDepth = depth
		t.HasChildren = len(t.Children) > 0
		t.ChildrenCount = len(t.Children)
		for _, ch := range t.Children {
			ch.ParentID = t.ID
			ch.RootTaskID = client.ID
		}
		return true
	})
	return forest
}
