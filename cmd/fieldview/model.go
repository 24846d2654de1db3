package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/binfield/pkg/types"
)

// bytesPerRow is the hex panel line width.
const bytesPerRow = 16

// Model is the viewer state: the mapped file, the cursor position, the first
// visible row, and the byte order used by the decode panel.
type Model struct {
	path string
	data []byte

	cursor int // absolute byte offset of the cursor
	topRow int // first visible row (row = offset / bytesPerRow)
	order  types.ByteOrder

	width  int
	height int
}

// NewModel builds the initial viewer state. data must be non-empty.
func NewModel(path string, data []byte) Model {
	return Model{
		path:  path,
		data:  data,
		order: types.LittleEndian,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.moveCursor(-1)
		case "right", "l":
			m.moveCursor(1)
		case "up", "k":
			m.moveCursor(-bytesPerRow)
		case "down", "j":
			m.moveCursor(bytesPerRow)
		case "pgup":
			m.moveCursor(-bytesPerRow * m.hexRows())
		case "pgdown":
			m.moveCursor(bytesPerRow * m.hexRows())
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			m.cursor = len(m.data) - 1
		case "o":
			if m.order == types.LittleEndian {
				m.order = types.BigEndian
			} else {
				m.order = types.LittleEndian
			}
		}
		m.clampScroll()
		return m, nil
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.data) {
		m.cursor = len(m.data) - 1
	}
}

// hexRows returns how many hex rows fit in the current window.
func (m Model) hexRows() int {
	// Header, status line, and panel borders eat into the height.
	rows := m.height - 6
	if rows < 1 {
		return 1
	}
	return rows
}

// clampScroll keeps the cursor row on screen.
func (m *Model) clampScroll() {
	row := m.cursor / bytesPerRow
	if row < m.topRow {
		m.topRow = row
	}
	if row >= m.topRow+m.hexRows() {
		m.topRow = row - m.hexRows() + 1
	}
	if m.topRow < 0 {
		m.topRow = 0
	}
}
