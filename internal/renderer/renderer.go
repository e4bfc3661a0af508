package renderer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/abeckett/vimdown/internal/engine/buffer"
)

// Terminal draws views onto a tcell screen and delivers its input
// events.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal allocates a terminal over the default tcell screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init takes over the terminal. Shutdown must be called before exit.
func (t *Terminal) Init() error {
	return t.screen.Init()
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

// Size returns the screen dimensions.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// PollEvent blocks for the next input or resize event.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Interrupt wakes up PollEvent with an interrupt event. Safe to call
// from any goroutine.
func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// TextRows returns how many rows are available for buffer text.
func (t *Terminal) TextRows() int {
	_, h := t.screen.Size()
	if h <= 1 {
		return 0
	}
	return h - 1
}

// Draw paints one frame.
func (t *Terminal) Draw(v View) {
	width, height := t.screen.Size()
	if width == 0 || height == 0 {
		return
	}

	t.screen.Clear()

	textRows := height - 1
	for row := 0; row < textRows; row++ {
		t.drawLine(v, row, width)
	}

	t.drawStatus(v, width, height-1)
	t.placeCursor(v, textRows)
	t.screen.Show()
}

func (t *Terminal) drawLine(v View, row, width int) {
	style := tcell.StyleDefault
	line := v.TopLine + row

	if line >= v.Snapshot.LineCount() {
		t.screen.SetContent(0, row, '~', nil, style.Dim(true))
		return
	}

	selStyle := style.Reverse(true)
	lineStart := v.Snapshot.LineStartOffset(line)
	text := v.Snapshot.LineText(line)

	x := 0
	for i, r := range text {
		if x >= width {
			return
		}

		cell := style
		if v.Selected && v.Selection.Contains(lineStart+buffer.ByteOffset(i)) {
			cell = selStyle
		}

		if r == '\t' {
			for n := tabSpan(x, v.TabWidth); n > 0 && x < width; n-- {
				t.screen.SetContent(x, row, ' ', nil, cell)
				x++
			}
			continue
		}

		t.screen.SetContent(x, row, r, nil, cell)
		x += runewidth.RuneWidth(r)
	}

	// A selection covering the line's newline shades one trailing cell.
	if v.Selected && x < width {
		end := lineStart + buffer.ByteOffset(len(text))
		if v.Selection.Contains(end) {
			t.screen.SetContent(x, row, ' ', nil, selStyle)
		}
	}
}

func (t *Terminal) drawStatus(v View, width, row int) {
	style := tcell.StyleDefault.Reverse(true)

	left := v.StatusLeft
	if v.Message != "" {
		left = v.Message
	}

	x := 0
	for _, r := range left {
		if x >= width {
			break
		}
		t.screen.SetContent(x, row, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		t.screen.SetContent(x, row, ' ', nil, style)
	}

	right := v.StatusRight
	rx := width - runewidth.StringWidth(right)
	if rx > x-len(left) && rx >= 0 {
		for _, r := range right {
			t.screen.SetContent(rx, row, r, nil, style)
			rx += runewidth.RuneWidth(r)
		}
	}
}

func (t *Terminal) placeCursor(v View, textRows int) {
	row := v.Cursor.Line - v.TopLine
	if row < 0 || row >= textRows {
		t.screen.HideCursor()
		return
	}

	shape := tcell.CursorStyleSteadyBlock
	if v.InsertCursor {
		shape = tcell.CursorStyleSteadyBar
	}
	t.screen.SetCursorStyle(shape)

	line := v.Snapshot.LineText(v.Cursor.Line)
	t.screen.ShowCursor(ColumnWidth(line, v.Cursor.Column, v.TabWidth), row)
}

// ColumnWidth returns the screen column for a byte column within line,
// accounting for tab stops and wide runes.
func ColumnWidth(line string, byteCol, tabWidth int) int {
	x := 0
	for i, r := range line {
		if i >= byteCol {
			break
		}
		if r == '\t' {
			x += tabSpan(x, tabWidth)
			continue
		}
		x += runewidth.RuneWidth(r)
	}
	return x
}

// tabSpan returns the cells to the next tab stop from column x.
func tabSpan(x, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	return tabWidth - x%tabWidth
}
