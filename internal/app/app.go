// Package app wires the terminal, the state machine and the dispatcher
// into a running editor.
package app

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/abeckett/vimdown/internal/config"
	"github.com/abeckett/vimdown/internal/dispatcher"
	"github.com/abeckett/vimdown/internal/engine/buffer"
	"github.com/abeckett/vimdown/internal/engine/history"
	"github.com/abeckett/vimdown/internal/input/vim"
	"github.com/abeckett/vimdown/internal/renderer"
)

// App is the running editor: one buffer, one terminal, one input loop.
type App struct {
	term *renderer.Terminal
	mach *vim.Machine
	disp *dispatcher.Dispatcher

	optsMu sync.Mutex
	opts   config.Options

	watcher *config.Watcher

	path    string
	topLine int

	promptActive bool
	promptText   []rune

	message string
	quit    bool
}

// New builds an app editing the file at path. A missing file opens an
// empty buffer that Save will create.
func New(path string, opts config.Options) (*App, error) {
	var text string
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		text = string(data)
	}

	term, err := renderer.NewTerminal()
	if err != nil {
		return nil, fmt.Errorf("creating terminal: %w", err)
	}

	return &App{
		term: term,
		mach: vim.NewMachine(),
		disp: dispatcher.New(buffer.FromString(text), opts),
		opts: opts,
		path: path,
	}, nil
}

// WatchConfig reloads opts from path whenever it changes on disk.
func (a *App) WatchConfig(path string) error {
	w, err := config.Watch(path, func(opts config.Options, err error) {
		if err != nil {
			return
		}
		a.optsMu.Lock()
		a.opts = opts
		a.optsMu.Unlock()
		a.disp.UpdateOptions(opts)
	})
	if err != nil {
		return err
	}
	a.watcher = w
	return nil
}

// Quit asks the input loop to exit. Safe to call from any goroutine.
func (a *App) Quit() {
	a.term.Interrupt()
}

// Run takes over the terminal and processes input until quit.
func (a *App) Run() error {
	if err := a.term.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer a.term.Shutdown()

	if a.watcher != nil {
		defer a.watcher.Close()
	}

	a.render()

	for !a.quit {
		switch ev := a.term.PollEvent().(type) {
		case *tcell.EventInterrupt:
			a.quit = true
		case *tcell.EventResize:
			// Redraw below.
		case *tcell.EventKey:
			a.handleKey(ev)
		case nil:
			return nil
		}
		a.render()
	}
	return nil
}

func (a *App) handleKey(tev *tcell.EventKey) {
	a.message = ""

	switch tev.Key() {
	case tcell.KeyCtrlQ:
		a.quit = true
		return
	case tcell.KeyCtrlS:
		a.save()
		return
	}

	if a.promptActive {
		a.handlePromptKey(tev)
		a.scrollToCursor()
		return
	}

	ev := NormalizeKey(tev)
	res := a.mach.HandleKey(ev)

	switch res.Kind {
	case vim.ResultSearchForward:
		a.promptActive = true
		a.promptText = a.promptText[:0]

	case vim.ResultPassthrough:
		a.insertEvent(tev)

	default:
		if err := a.disp.Apply(res); err != nil {
			a.message = statusMessage(err)
		}
	}

	a.scrollToCursor()
}

// insertEvent applies one insert-mode keystroke to the buffer.
func (a *App) insertEvent(tev *tcell.EventKey) {
	var err error
	switch tev.Key() {
	case tcell.KeyRune:
		err = a.disp.InsertText(string(tev.Rune()))
	case tcell.KeyEnter:
		err = a.disp.InsertText("\n")
	case tcell.KeyTab:
		err = a.disp.InsertText("\t")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		err = a.disp.Backspace()
	}
	if err != nil {
		a.message = err.Error()
	}
}

func (a *App) handlePromptKey(tev *tcell.EventKey) {
	switch tev.Key() {
	case tcell.KeyEscape:
		a.promptActive = false
	case tcell.KeyEnter:
		term := string(a.promptText)
		a.promptActive = false
		if term != "" && !a.disp.Search(term) {
			a.message = "pattern not found: " + term
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := len(a.promptText); n > 0 {
			a.promptText = a.promptText[:n-1]
		}
	case tcell.KeyRune:
		a.promptText = append(a.promptText, tev.Rune())
	}
}

func (a *App) save() {
	if a.path == "" {
		a.message = "no file name"
		return
	}
	if err := os.WriteFile(a.path, []byte(a.disp.Buffer().Text()), 0o644); err != nil {
		a.message = err.Error()
		return
	}
	a.message = fmt.Sprintf("%q written", a.path)
}

func (a *App) scrollToCursor() {
	a.optsMu.Lock()
	scrollOff := a.opts.Editor.ScrollOff
	a.optsMu.Unlock()

	line := a.disp.Buffer().OffsetToPoint(a.disp.Cursor()).Line
	a.topLine = scrollTo(a.topLine, line, a.term.TextRows(), scrollOff, a.disp.Buffer().LineCount())
}

func (a *App) render() {
	a.optsMu.Lock()
	tabWidth := a.opts.Editor.TabWidth
	a.optsMu.Unlock()

	buf := a.disp.Buffer()
	cursor := buf.OffsetToPoint(a.disp.Cursor())
	sel, selected := a.disp.Selection(a.mach.Mode() == vim.ModeVisualLine)

	name := a.path
	if name == "" {
		name = "[No Name]"
	}

	view := renderer.View{
		Snapshot:     buf.Snapshot(),
		TopLine:      a.topLine,
		Cursor:       cursor,
		Selection:    sel,
		Selected:     selected,
		TabWidth:     tabWidth,
		StatusLeft:   fmt.Sprintf(" %s  %s", a.mach.Mode(), name),
		StatusRight:  fmt.Sprintf("%s  %d:%d ", a.mach.PendingKeys(), cursor.Line+1, cursor.Column+1),
		Message:      a.statusOverride(),
		InsertCursor: a.mach.Mode() == vim.ModeInsert,
	}

	a.term.Draw(view)
}

func (a *App) statusOverride() string {
	if a.promptActive {
		return "/" + string(a.promptText)
	}
	return a.message
}

// statusMessage turns expected errors into short status text.
func statusMessage(err error) string {
	switch {
	case errors.Is(err, history.ErrNothingToUndo):
		return "already at oldest change"
	case errors.Is(err, history.ErrNothingToRedo):
		return "already at newest change"
	default:
		return err.Error()
	}
}

// scrollTo keeps the cursor line inside the viewport with scrollOff
// lines of context, clamped to the document.
func scrollTo(top, cursor, rows, scrollOff, lineCount int) int {
	if rows <= 0 {
		return 0
	}

	if max := (rows - 1) / 2; scrollOff > max {
		scrollOff = max
	}

	if cursor < top+scrollOff {
		top = cursor - scrollOff
	}
	if cursor > top+rows-1-scrollOff {
		top = cursor - rows + 1 + scrollOff
	}

	if maxTop := lineCount - rows; top > maxTop {
		top = maxTop
	}
	if top < 0 {
		top = 0
	}
	return top
}
