// Package dashboard is the interaction engine behind the terminal UI. It owns
// the task forest, the expand set, the selection cursor, the view mode and the
// remote load state, and turns abstract actions into state changes.
//
// A Dashboard is not safe for concurrent use; the UI drives it from its single
// update goroutine.
package dashboard

import (
	"dial-cli/internal/model"
	"dial-cli/internal/outline"
)

type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionNextMode
	ActionUp
	ActionDown
	ActionToggleStatus
	ActionCollapse
	ActionExpand
	ActionDismissError
)

// Effect is what the caller must do after an action.
type Effect int

const (
	EffectNone Effect = iota
	EffectQuit
	// EffectLoad asks the caller to start a remote fetch and report it back
	// through FinishLoad.
	EffectLoad
)

type Dashboard struct {
	forest   model.Forest
	index    model.Index
	expanded outline.ExpandSet
	cursor   outline.Cursor
	rows     []outline.Row
	mode     Mode
	sync     SyncState
}

// New builds a dashboard over seed. The dashboard takes ownership of seed.
func New(seed model.Forest) *Dashboard {
	d := &Dashboard{
		expanded: outline.NewExpandSet(),
		mode:     DefaultMode,
		sync:     Idle(),
	}
	d.replace(seed)
	return d
}

func (d *Dashboard) Forest() model.Forest { return d.forest }
func (d *Dashboard) Rows() []outline.Row  { return d.rows }
func (d *Dashboard) Cursor() int          { return d.cursor.Index() }
func (d *Dashboard) Mode() Mode           { return d.mode }
func (d *Dashboard) Sync() SyncState      { return d.sync }

// Selected returns the row under the cursor.
func (d *Dashboard) Selected() (outline.Row, bool) {
	return d.cursor.Current(d.rows)
}

func (d *Dashboard) replace(f model.Forest) {
	if f == nil {
		f = model.Forest{}
	}
	d.forest = f
	d.index = model.NewIndex(f)
	d.refresh()
}

// refresh recomputes the projection and clamps the cursor into it.
func (d *Dashboard) refresh() {
	d.rows = outline.Flatten(d.forest, d.expanded)
	d.cursor.Clamp(len(d.rows))
}

func (d *Dashboard) MoveUp() {
	d.cursor.Up()
}

func (d *Dashboard) MoveDown() {
	d.cursor.Down(len(d.rows))
}

func (d *Dashboard) ExpandSelected() {
	if r, ok := d.Selected(); ok {
		d.expanded.Expand(r.Task.ID)
		d.refresh()
	}
}

func (d *Dashboard) CollapseSelected() {
	if r, ok := d.Selected(); ok {
		d.expanded.Collapse(r.Task.ID)
		d.refresh()
	}
}

// ToggleSelectedStatus advances the selected task's status in place. The
// change is local only.
func (d *Dashboard) ToggleSelectedStatus() {
	r, ok := d.Selected()
	if !ok {
		return
	}
	t, ok := d.index.Get(r.Task.ID)
	if !ok {
		return
	}
	t.Status = t.Status.Next()
}

// AdvanceMode moves to the next mode and reports whether the new mode wants a
// reload.
func (d *Dashboard) AdvanceMode() bool {
	d.mode = d.mode.Next()
	return d.mode == ModeToday
}

// BeginLoad enters Loading unless a load is already in flight. Any displayed
// error is cleared.
func (d *Dashboard) BeginLoad() bool {
	if d.sync.IsLoading() {
		return false
	}
	d.sync = Loading()
	return true
}

// FinishLoad completes the in-flight load. On success the forest is replaced
// wholesale; on failure it is left untouched. Calls outside Loading are
// ignored.
func (d *Dashboard) FinishLoad(f model.Forest, err error) {
	if !d.sync.IsLoading() {
		return
	}
	if err != nil {
		d.sync = Failed(err)
		return
	}
	d.replace(f)
	d.sync = Idle()
}

func (d *Dashboard) DismissError() {
	if d.sync.IsFailed() {
		d.sync = Idle()
	}
}

func (d *Dashboard) Apply(a Action) Effect {
	switch a {
	case ActionQuit:
		return EffectQuit
	case ActionNextMode:
		if d.AdvanceMode() && d.BeginLoad() {
			return EffectLoad
		}
	case ActionUp:
		d.MoveUp()
	case ActionDown:
		d.MoveDown()
	case ActionToggleStatus:
		d.ToggleSelectedStatus()
	case ActionCollapse:
		d.CollapseSelected()
	case ActionExpand:
		d.ExpandSelected()
	case ActionDismissError:
		d.DismissError()
	}
	return EffectNone
}

type FrameRow struct {
	outline.Row
	Selected bool
}

// Frame is a read-only snapshot for one render.
type Frame struct {
	Mode     Mode
	Rows     []FrameRow
	Cursor   int
	Loading  bool
	Err      string
	Selected *model.Task
}

func (f Frame) HasError() bool { return f.Err != "" }

func (d *Dashboard) Frame() Frame {
	fr := Frame{
		Mode:    d.mode,
		Cursor:  d.cursor.Index(),
		Loading: d.sync.IsLoading(),
		Rows:    make([]FrameRow, len(d.rows)),
	}
	if msg, ok := d.sync.Err(); ok {
		fr.Err = msg
	}
	for i, r := range d.rows {
		fr.Rows[i] = FrameRow{Row: r, Selected: i == fr.Cursor}
	}
	if r, ok := d.Selected(); ok {
		fr.Selected = r.Task
	}
	return fr
}
