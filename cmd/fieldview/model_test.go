package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/binfield/pkg/types"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestCursorMovementClamps(t *testing.T) {
	m := NewModel("test.bin", make([]byte, 20))
	m = update(m, tea.WindowSizeMsg{Width: 120, Height: 30})

	m = update(m, key("h"))
	if m.cursor != 0 {
		t.Fatalf("cursor moved before start: %d", m.cursor)
	}

	m = update(m, key("l"))
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}

	m = update(m, key("j"))
	if m.cursor != 17 {
		t.Fatalf("cursor = %d, want 17", m.cursor)
	}

	m = update(m, key("j"))
	if m.cursor != 19 {
		t.Fatalf("cursor must clamp to last byte, got %d", m.cursor)
	}

	m = update(m, key("g"))
	if m.cursor != 0 {
		t.Fatalf("g should jump to start, got %d", m.cursor)
	}
	m = update(m, key("G"))
	if m.cursor != 19 {
		t.Fatalf("G should jump to end, got %d", m.cursor)
	}
}

func TestOrderToggle(t *testing.T) {
	m := NewModel("test.bin", make([]byte, 4))
	if m.order != types.LittleEndian {
		t.Fatalf("default order should be little-endian")
	}
	m = update(m, key("o"))
	if m.order != types.BigEndian {
		t.Fatalf("o should toggle to big-endian")
	}
	m = update(m, key("o"))
	if m.order != types.LittleEndian {
		t.Fatalf("o should toggle back")
	}
}

func TestViewDecodesAtCursor(t *testing.T) {
	data := []byte{0x12, 0x34, 0x00, 0x00}
	m := NewModel("test.bin", data)
	m = update(m, tea.WindowSizeMsg{Width: 120, Height: 30})
	m = update(m, key("o")) // big-endian

	view := m.View()
	if !strings.Contains(view, "4660") { // 0x1234 as uint16 BE
		t.Fatalf("view missing uint16 decode:\n%s", view)
	}
	if !strings.Contains(view, "test.bin") {
		t.Fatalf("view missing file name")
	}

	// Near the end, the wide kinds cannot decode.
	m = update(m, key("G"))
	view = m.View()
	if !strings.Contains(view, "n/a") {
		t.Fatalf("view should mark undecodable kinds:\n%s", view)
	}
}
