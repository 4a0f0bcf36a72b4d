package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyUp, 0, ActionPanN},
		{tcell.KeyDown, 0, ActionPanS},
		{tcell.KeyRight, 0, ActionPanE},
		{tcell.KeyLeft, 0, ActionPanW},
		{tcell.KeyEscape, 0, ActionQuit},
		{tcell.KeyRune, 'q', ActionQuit},
		{tcell.KeyRune, 'k', ActionPanN},
		{tcell.KeyRune, 'h', ActionPanW},
		{tcell.KeyRune, 'c', ActionCenter},
		{tcell.KeyRune, 'N', ActionNewGame},
		{tcell.KeyRune, '1', ActionBuy1},
		{tcell.KeyRune, '4', ActionBuy4},
		{tcell.KeyRune, '5', ActionNone},
		{tcell.KeyRune, 'x', ActionNone},
	}
	for _, tc := range cases {
		ev := tcell.NewEventKey(tc.key, tc.r, tcell.ModNone)
		if got := keyToAction(ev); got != tc.want {
			t.Errorf("key %v rune %q: got %v, want %v", tc.key, tc.r, got, tc.want)
		}
	}
}

func TestShopIndex(t *testing.T) {
	for i, a := range []Action{ActionBuy1, ActionBuy2, ActionBuy3, ActionBuy4} {
		if got, ok := a.ShopIndex(); !ok || got != i {
			t.Errorf("%v.ShopIndex() = %d, %v", a, got, ok)
		}
	}
	if _, ok := ActionQuit.ShopIndex(); ok {
		t.Error("quit is not a buy action")
	}
}

func TestClickAt(t *testing.T) {
	if x, y, ok := clickAt(tcell.NewEventMouse(4, 7, tcell.Button1, tcell.ModNone)); !ok || x != 4 || y != 7 {
		t.Errorf("clickAt = (%d,%d,%v)", x, y, ok)
	}
	if _, _, ok := clickAt(tcell.NewEventMouse(4, 7, tcell.ButtonNone, tcell.ModNone)); ok {
		t.Error("motion without a button is not a click")
	}
}
