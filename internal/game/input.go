package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested action.
type Action uint8

const (
	ActionNone Action = iota
	ActionPanN
	ActionPanS
	ActionPanE
	ActionPanW
	ActionCenter
	ActionNewGame
	ActionQuit
	ActionBuy1
	ActionBuy2
	ActionBuy3
	ActionBuy4
)

// ShopIndex returns the catalogue index a buy action refers to.
func (a Action) ShopIndex() (int, bool) {
	if a < ActionBuy1 || a > ActionBuy4 {
		return 0, false
	}
	return int(a - ActionBuy1), true
}

// keyToAction maps a tcell key event to an action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionPanN
	case tcell.KeyDown:
		return ActionPanS
	case tcell.KeyRight:
		return ActionPanE
	case tcell.KeyLeft:
		return ActionPanW
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'k', 'K':
		return ActionPanN
	case 'j', 'J':
		return ActionPanS
	case 'l', 'L':
		return ActionPanE
	case 'h', 'H':
		return ActionPanW
	case 'c', 'C':
		return ActionCenter
	case 'n', 'N':
		return ActionNewGame
	case 'q', 'Q':
		return ActionQuit
	case '1':
		return ActionBuy1
	case '2':
		return ActionBuy2
	case '3':
		return ActionBuy3
	case '4':
		return ActionBuy4
	}
	return ActionNone
}

// clickAt reports the screen cell of a primary-button press.
func clickAt(ev *tcell.EventMouse) (x, y int, ok bool) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return 0, 0, false
	}
	x, y = ev.Position()
	return x, y, true
}
