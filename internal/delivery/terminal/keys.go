package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/flashdeck/flashdeck/internal/input"
)

var keyCodes = map[tcell.Key]input.KeyCode{
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyBacktab:    input.KeyBacktab,
	tcell.KeyCtrlC:      input.KeyInterrupt,
	tcell.KeyEscape:     input.KeyEscape,
}

// translateKey maps a tcell key event to the keys the study loop understands.
func translateKey(ev *tcell.EventKey) input.Key {
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			if ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0 {
				return input.Code(input.KeyInterrupt)
			}
			return input.Code(input.KeyOther)
		}
		return input.Rune(ev.Rune())
	}

	if code, ok := keyCodes[ev.Key()]; ok {
		return input.Code(code)
	}
	return input.Code(input.KeyOther)
}
