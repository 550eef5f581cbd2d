package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/pianoratio/keyboard"
	"github.com/jsphweid/pianoratio/util"
)

const (
	edge     = '│'
	blackKey = '█'
)

// Terminal draws keyboard rows as text. Key positions come from the layout
// offsets, scaled so one white key is CellWidth columns wide.
type Terminal struct {
	CellWidth   int
	BlackHeight int
	WhiteHeight int
	Frame       lipgloss.Style
	Caption     lipgloss.Style
}

func NewTerminal() Terminal {
	return Terminal{
		CellWidth:   5,
		BlackHeight: 2,
		WhiteHeight: 2,
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Margin(0, 1),
		Caption: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("30")),
	}
}

func (t Terminal) column(k keyboard.Key, whiteWidth int) int {
	if whiteWidth == 0 {
		return 0
	}
	return k.Offset * t.CellWidth / whiteWidth
}

func caption(r keyboard.Row) string {
	if len(r.Octaves) == 0 {
		return ""
	}
	first := r.Octaves[0].Number
	last := r.Octaves[len(r.Octaves)-1].Number
	if first == last {
		return fmt.Sprintf("octave %v", first)
	}
	return fmt.Sprintf("octaves %v-%v", first, last)
}

func (t Terminal) Row(r keyboard.Row) string {
	if len(r.Octaves) == 0 {
		return ""
	}
	whiteWidth := r.Octaves[0].Config.WhiteKeyWidth
	cols := r.Width()*t.CellWidth/util.Max(whiteWidth, 1) + 1

	blank := func(fill rune) []rune {
		line := make([]rune, cols)
		for i := range line {
			line[i] = fill
		}
		return line
	}

	top := blank(' ')
	bottom := blank(' ')
	label := blank(' ')
	keys := r.Keys()
	for _, k := range keys {
		if k.Kind != keyboard.White {
			continue
		}
		col := t.column(k, whiteWidth)
		top[col] = edge
		bottom[col] = edge
		label[col] = edge
		for i, c := range []rune(k.Label) {
			pos := col + 1 + i
			if i >= t.CellWidth-1 || pos >= cols {
				break
			}
			label[pos] = c
		}
	}
	top[cols-1] = edge
	bottom[cols-1] = edge
	label[cols-1] = edge

	for _, k := range keys {
		if k.Kind != keyboard.Black {
			continue
		}
		col := t.column(k, whiteWidth)
		for _, pos := range []int{col - 1, col} {
			if pos >= 0 && pos < cols {
				top[pos] = blackKey
			}
		}
	}

	var lines []string
	for i := 0; i < t.BlackHeight; i++ {
		lines = append(lines, string(top))
	}
	for i := 1; i < t.WhiteHeight; i++ {
		lines = append(lines, string(bottom))
	}
	lines = append(lines, string(label))

	return lipgloss.JoinVertical(lipgloss.Left,
		t.Caption.Render(caption(r)),
		t.Frame.Render(strings.Join(lines, "\n")),
	)
}

func (t Terminal) Board(rows []keyboard.Row) string {
	rendered := util.MapSlice(rows, t.Row)
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
