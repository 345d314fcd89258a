package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dial-cli/internal/api"
	"dial-cli/internal/dashboard"
	"dial-cli/internal/model"
	"dial-cli/internal/period"
)

// planOutput is the JSON shape of `dial plan`.
type planOutput struct {
	Period     string          `json:"period"`
	Start      time.Time       `json:"start"`
	End        time.Time       `json:"end"`
	Tasks      model.Forest    `json:"tasks"`
	TasksTotal int             `json:"tasks_total"`
	ScoreTotal int             `json:"score_total"`
	GroupStats []api.GroupStat `json:"group_stats,omitempty"`
}

func newPlanCmd(app *App) *cobra.Command {
	kinds := make([]string, 0, len(period.Kinds()))
	for _, k := range period.Kinds() {
		kinds = append(kinds, string(k))
	}
	cmd := &cobra.Command{
		Use:       "plan [" + strings.Join(kinds, "|") + "]",
		Short:     "Fetch a plan and print it",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: kinds,
		Example: strings.TrimSpace(`
  dial plan
  dial plan month --format tree
  dial plan week --pretty
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := period.Day
			if len(args) == 1 {
				k, err := period.ParseKind(args[0])
				if err != nil {
					return err
				}
				kind = k
			}
			w := period.Of(kind, app.now())

			out, err := app.fetchPlan(cmd.Context(), w)
			if err != nil {
				return err
			}
			if app.Format == "tree" {
				return writeOut(cmd, app, out.Tasks)
			}
			return writeOut(cmd, app, out)
		},
	}
	return cmd
}

func (app *App) fetchPlan(ctx context.Context, w period.Window) (planOutput, error) {
	out := planOutput{Period: string(w.Kind), Start: w.Start, End: w.End}
	if app.Demo {
		out.Tasks = dashboard.SampleForest(app.now()).Within(w.Period())
		out.TasksTotal = out.Tasks.Len()
		out.Tasks.Walk(func(t *model.Task, _ int) bool {
			out.ScoreTotal += t.Score
			return true
		})
		return out, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	data, err := app.client().PlanData(ctx, api.NewPlanRequest(w))
	if err != nil {
		app.log.Warn("plan fetch failed", "period", w.Kind, "err", err)
		return out, fmt.Errorf("fetch %s plan: %w", w.Kind, err)
	}
	out.Tasks = data.Forest()
	out.TasksTotal = data.TasksTotal
	out.ScoreTotal = data.ScoreTotal
	out.GroupStats = data.GroupStats
	app.log.Info("plan fetched", "period", w.Kind, "tasks", out.Tasks.Len())
	return out, nil
}
