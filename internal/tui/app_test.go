package tui

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"dial-cli/internal/dashboard"
	"dial-cli/internal/model"
)

type fakeLoader struct {
	calls  atomic.Int32
	forest model.Forest
	err    error
}

func (f *fakeLoader) Today(context.Context, time.Time) (model.Forest, error) {
	f.calls.Add(1)
	return f.forest, f.err
}

var fixedNow = time.Date(2025, 7, 16, 9, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T, loader Loader, seed model.Forest) appModel {
	t.Helper()
	setGlyphs(glyphSetUnicode)
	m := newAppModel(Options{Loader: loader, Seed: seed, Now: func() time.Time { return fixedNow }})
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	return mm.(appModel)
}

func press(t *testing.T, m appModel, k tea.KeyMsg) (appModel, tea.Cmd) {
	t.Helper()
	mm, cmd := m.Update(k)
	return mm.(appModel), cmd
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func plain(s string) string { return xansi.Strip(s) }

func TestKeys_MapToActions(t *testing.T) {
	k := defaultKeyMap()
	cases := []struct {
		msg  tea.KeyMsg
		want dashboard.Action
	}{
		{runes("q"), dashboard.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, dashboard.ActionQuit},
		{keyTab, dashboard.ActionNextMode},
		{keyUp, dashboard.ActionUp},
		{runes("k"), dashboard.ActionUp},
		{keyDown, dashboard.ActionDown},
		{runes("j"), dashboard.ActionDown},
		{keySpace, dashboard.ActionToggleStatus},
		{keyLeft, dashboard.ActionCollapse},
		{runes("h"), dashboard.ActionCollapse},
		{keyRight, dashboard.ActionExpand},
		{runes("l"), dashboard.ActionExpand},
		{keyEsc, dashboard.ActionDismissError},
		{runes("x"), dashboard.ActionNone},
	}
	for _, tc := range cases {
		if got := k.action(tc.msg); got != tc.want {
			t.Fatalf("%q: expected action %v, got %v", tc.msg.String(), tc.want, got)
		}
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil, nil)
	_, cmd := press(t, m, runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestEnterToday_LoadsAndReplacesForest(t *testing.T) {
	fetched := model.Forest{{ID: "r1", Title: "Remote task"}}
	loader := &fakeLoader{forest: fetched}
	m := newTestModel(t, loader, dashboard.SampleForest(fixedNow))

	m, cmd := press(t, m, keyTab)
	if cmd == nil {
		t.Fatalf("expected a load cmd when entering Today")
	}
	if !m.dash.Sync().IsLoading() {
		t.Fatalf("expected loading")
	}
	if !strings.Contains(plain(m.View()), "Loading") {
		t.Fatalf("expected loading indicator in view")
	}

	msg := m.loadTodayCmd()()
	if loader.calls.Load() != 1 {
		t.Fatalf("expected 1 fetch, got %d", loader.calls.Load())
	}
	mm, _ := m.Update(msg)
	m = mm.(appModel)

	if m.dash.Forest().Len() != 1 || m.dash.Forest()[0].ID != "r1" {
		t.Fatalf("expected fetched forest, got %+v", m.dash.Forest())
	}
	if !strings.Contains(plain(m.View()), "Remote task") {
		t.Fatalf("expected fetched task in view")
	}
}

func TestEnterToday_SingleFlight(t *testing.T) {
	m := newTestModel(t, &fakeLoader{}, nil)
	m, cmd := press(t, m, keyTab)
	if cmd == nil {
		t.Fatalf("expected first load")
	}
	for i := 0; i < len(dashboard.Modes()); i++ {
		m, cmd = press(t, m, keyTab)
		if cmd != nil {
			t.Fatalf("step %d (%v): expected no second load while loading", i, m.dash.Mode())
		}
	}
	if m.dash.Mode() != dashboard.ModeToday {
		t.Fatalf("expected Today, got %v", m.dash.Mode())
	}
}

func TestLoadError_ShownThenDismissed(t *testing.T) {
	m := newTestModel(t, &fakeLoader{}, dashboard.SampleForest(fixedNow))
	before := m.dash.Forest().Clone()

	m, _ = press(t, m, keyTab)
	mm, _ := m.Update(planLoadedMsg{err: errors.New("API error 401: unauthorized")})
	m = mm.(appModel)

	v := plain(m.View())
	if !strings.Contains(v, "API error 401: unauthorized") {
		t.Fatalf("expected error in status line, got:\n%s", v)
	}
	if m.dash.Forest().Len() != before.Len() {
		t.Fatalf("expected forest unchanged")
	}

	m, _ = press(t, m, keyEsc)
	if strings.Contains(plain(m.View()), "unauthorized") {
		t.Fatalf("expected error dismissed")
	}
}

func TestNilLoader_FailsInsteadOfPanicking(t *testing.T) {
	m := newTestModel(t, nil, nil)
	m, _ = press(t, m, keyTab)
	msg, ok := m.loadTodayCmd()().(planLoadedMsg)
	if !ok || msg.err == nil {
		t.Fatalf("expected an error result, got %#v", msg)
	}
}

func TestPlaceholderModes(t *testing.T) {
	m := newTestModel(t, &fakeLoader{}, dashboard.SampleForest(fixedNow))
	m, _ = press(t, m, keyTab) // Today
	mm, _ := m.Update(planLoadedMsg{forest: model.Forest{}})
	m = mm.(appModel)
	m, _ = press(t, m, keyTab) // This Week

	v := plain(m.View())
	if !strings.Contains(v, "This view is not implemented yet") {
		t.Fatalf("expected placeholder, got:\n%s", v)
	}
}

func TestTreeView_ExpandToggleCollapse(t *testing.T) {
	m := newTestModel(t, nil, dashboard.SampleForest(fixedNow))

	v := plain(m.View())
	if !strings.Contains(v, "▸ ◐ Ship terminal client [High] #project") {
		t.Fatalf("expected collapsed root row, got:\n%s", v)
	}
	if strings.Contains(v, "Collapsible task tree") {
		t.Fatalf("expected children hidden while collapsed")
	}

	m, _ = press(t, m, keyRight)
	m, _ = press(t, m, keyDown)
	v = plain(m.View())
	if !strings.Contains(v, "▾ ◐ Ship terminal client") || !strings.Contains(v, "   ✓ Collapsible task tree") {
		t.Fatalf("expected expanded subtree, got:\n%s", v)
	}

	m, _ = press(t, m, keySpace)
	if got := m.dash.Forest()[0].Children[0].Status; got != model.StatusCancelled {
		t.Fatalf("expected Completed -> Cancelled, got %v", got)
	}

	m, _ = press(t, m, keyUp)
	m, _ = press(t, m, keyLeft)
	if len(m.dash.Rows()) != 3 {
		t.Fatalf("expected 3 rows after collapse, got %d", len(m.dash.Rows()))
	}
}

func TestASCIIGlyphs(t *testing.T) {
	m := newTestModel(t, nil, dashboard.SampleForest(fixedNow))
	setGlyphs(glyphSetASCII)
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	v := plain(m.View())
	if !strings.Contains(v, "> ~ Ship terminal client") {
		t.Fatalf("expected ascii twisty and status, got:\n%s", v)
	}
}

func TestScroll_KeepsCursorVisible(t *testing.T) {
	var forest model.Forest
	for i := 0; i < 50; i++ {
		forest = append(forest, &model.Task{ID: "t" + string(rune('A'+i%26)) + string(rune('a'+i/26)), Title: "Task " + string(rune('A'+i%26)) + string(rune('a'+i/26))})
	}
	m := newTestModel(t, nil, forest)
	for i := 0; i < 40; i++ {
		m, _ = press(t, m, keyDown)
	}
	if m.dash.Cursor() != 40 {
		t.Fatalf("expected cursor 40, got %d", m.dash.Cursor())
	}
	if m.offset == 0 {
		t.Fatalf("expected the list to scroll")
	}
	want := forest[40].Title
	if !strings.Contains(plain(m.View()), want) {
		t.Fatalf("expected selected row %q to be visible", want)
	}
}

func TestDetailPane_WideTerminal(t *testing.T) {
	m := newTestModel(t, nil, dashboard.SampleForest(fixedNow))
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 30})
	m = mm.(appModel)
	v := plain(m.View())
	if !strings.Contains(v, "Subtasks") {
		t.Fatalf("expected detail pane for the selected task, got:\n%s", v)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, nil, nil)
	short := m.listHeight()
	m, _ = press(t, m, runes("?"))
	if !m.help.ShowAll {
		t.Fatalf("expected full help")
	}
	if m.listHeight() >= short {
		t.Fatalf("expected full help to take more lines")
	}
}

func TestClockTick(t *testing.T) {
	m := newTestModel(t, nil, nil)
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 30})
	m = mm.(appModel)
	later := fixedNow.Add(90 * time.Second)
	mm, cmd := m.Update(clockTickMsg(later))
	m = mm.(appModel)
	if cmd == nil {
		t.Fatalf("expected next tick to be scheduled")
	}
	if !strings.Contains(plain(m.View()), later.Format("15:04:05")) {
		t.Fatalf("expected clock in nav bar")
	}
}
