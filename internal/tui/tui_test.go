package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/playlist-poster/internal/config"
	"github.com/handiism/playlist-poster/internal/generate"
)

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_ToggleOptions(t *testing.T) {
	m := NewModel(config.DefaultSettings())

	m = update(t, m, key("l"))
	m = update(t, m, key("v"))

	if !m.legend {
		t.Error("legend = false, want true after pressing l")
	}
	if !m.verbose {
		t.Error("verbose = false, want true after pressing v")
	}
	if !strings.Contains(m.View(), "[×] Write legend file") {
		t.Error("input view should show legend option as checked")
	}
}

func TestModel_LegendDefaultFromSettings(t *testing.T) {
	s := config.DefaultSettings()
	s.WriteLegend = true

	if m := NewModel(s); !m.legend {
		t.Error("legend = false, want true from settings")
	}
}

func TestModel_ProgressLogs(t *testing.T) {
	m := NewModel(nil)

	m = update(t, m, ProgressMsg{Event: generate.ProgressEvent{Message: "hidden", Level: generate.LevelVerbose}})
	if len(m.logs) != 0 {
		t.Errorf("log count = %d, want verbose event filtered", len(m.logs))
	}

	for i := 0; i < maxLogs+5; i++ {
		m = update(t, m, ProgressMsg{Event: generate.ProgressEvent{Message: fmt.Sprintf("event %d", i), Level: generate.LevelInfo}})
	}
	if len(m.logs) != maxLogs {
		t.Fatalf("log count = %d, want %d", len(m.logs), maxLogs)
	}
	if m.logs[len(m.logs)-1].Message != fmt.Sprintf("event %d", maxLogs+4) {
		t.Errorf("last log = %q, want newest event", m.logs[len(m.logs)-1].Message)
	}
}

func TestModel_InitAndRenderDone(t *testing.T) {
	m := NewModel(nil)
	m.state = StateFetching

	m = update(t, m, InitDoneMsg{Err: errors.New("boom")})
	if m.state != StateError {
		t.Fatalf("state = %v, want StateError", m.state)
	}
	if !strings.Contains(m.View(), "boom") {
		t.Error("error view should show the error")
	}

	m = update(t, m, key("r"))
	if m.state != StateInput {
		t.Fatalf("state = %v, want StateInput after reset", m.state)
	}

	m.state = StateRendering
	m.albums = []string{"A - One", "B - Two"}
	m = update(t, m, RenderDoneMsg{Done: 2, Total: 2})
	if m.state != StateComplete {
		t.Fatalf("state = %v, want StateComplete", m.state)
	}
	if !strings.Contains(m.View(), m.settings.OutputPath) {
		t.Error("complete view should show the output path")
	}
}

func TestModel_StaleMessagesIgnored(t *testing.T) {
	m := NewModel(nil)

	m = update(t, m, RenderDoneMsg{Err: errors.New("late")})
	if m.state != StateInput {
		t.Errorf("state = %v, want StateInput", m.state)
	}
}

func TestModel_EscCancels(t *testing.T) {
	m := NewModel(nil)
	m.state = StateRendering

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != StateError {
		t.Fatalf("state = %v, want StateError", m.state)
	}
	if m.ctx.Err() == nil {
		t.Error("context should be cancelled")
	}
}
