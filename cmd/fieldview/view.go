package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/binfield/pkg/codec"
	"github.com/joshuapare/binfield/pkg/types"
)

var decodeKinds = []types.Kind{
	types.Uint8, types.Int8,
	types.Uint16, types.Int16,
	types.Uint32, types.Int32,
	types.Float32, types.Float64,
}

func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf(" fieldview - %s ", m.path))
	status := statusStyle.Render(fmt.Sprintf(
		"offset 0x%x (%d/%d)  order %s  [o] toggle order  [q] quit",
		m.cursor, m.cursor, len(m.data), m.order))

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		panelStyle.Render(m.renderHex()),
		panelStyle.Render(m.renderDecode()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

// renderHex renders the visible hex rows with the cursor byte highlighted.
func (m Model) renderHex() string {
	var sb strings.Builder
	lastRow := (len(m.data) - 1) / bytesPerRow
	end := m.topRow + m.hexRows()
	if end > lastRow+1 {
		end = lastRow + 1
	}
	for row := m.topRow; row < end; row++ {
		base := row * bytesPerRow
		chunk := m.data[base:min(base+bytesPerRow, len(m.data))]

		sb.WriteString(offsetStyle.Render(fmt.Sprintf("%08x  ", base)))
		for i := 0; i < bytesPerRow; i++ {
			if i == bytesPerRow/2 {
				sb.WriteByte(' ')
			}
			if i >= len(chunk) {
				sb.WriteString("   ")
				continue
			}
			cell := fmt.Sprintf("%02x", chunk[i])
			if base+i == m.cursor {
				cell = cursorStyle.Render(cell)
			}
			sb.WriteString(cell)
			sb.WriteByte(' ')
		}
		sb.WriteByte(' ')
		for i, c := range chunk {
			s := "."
			if c >= 0x20 && c < 0x7f {
				s = string(rune(c))
			}
			if base+i == m.cursor {
				s = cursorStyle.Render(s)
			}
			sb.WriteString(s)
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderDecode renders every codec kind decoded at the cursor in the current
// byte order. Kinds whose span runs past the end of the file show "n/a".
func (m Model) renderDecode() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("decode @ 0x%x (%s)", m.cursor, m.order)))
	sb.WriteByte('\n')

	buf := codec.New(m.data)
	for _, k := range decodeKinds {
		v, err := buf.ReadValue(k, m.cursor, m.order)
		text := "n/a"
		if err == nil {
			text = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(&sb, "%s %s\n", kindStyle.Render(fmt.Sprintf("%-8s", k)), text)
	}
	return strings.TrimRight(sb.String(), "\n")
}
