package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/abeckett/vimdown/internal/input/key"
)

// NormalizeKey converts a tcell key event into the engine's normalized
// form. Control-letter chords, which tcell reports as dedicated key
// codes, come back as the plain letter with the Ctrl modifier set.
func NormalizeKey(ev *tcell.EventKey) key.Event {
	mods := normalizeMods(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods)
	}

	if r, ok := ctrlLetter(ev.Key()); ok {
		return key.NewRuneEvent(r, mods.With(key.ModCtrl))
	}

	return key.NewSpecialEvent(key.KeyNone, mods)
}

// ctrlLetter maps tcell's control-letter key codes back to their base
// letter. Enter, Tab and Backspace never reach here; their aliases are
// matched by name first.
func ctrlLetter(k tcell.Key) (rune, bool) {
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return 'a' + rune(k-tcell.KeyCtrlA), true
	}
	return 0, false
}

func normalizeMods(mods tcell.ModMask) key.Modifier {
	var out key.Modifier
	if mods&tcell.ModShift != 0 {
		out = out.With(key.ModShift)
	}
	if mods&tcell.ModCtrl != 0 {
		out = out.With(key.ModCtrl)
	}
	if mods&tcell.ModAlt != 0 {
		out = out.With(key.ModAlt)
	}
	if mods&tcell.ModMeta != 0 {
		out = out.With(key.ModMeta)
	}
	return out
}
