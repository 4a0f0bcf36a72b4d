package engine

import "fmt"

// Effect is what a shop item upgrades.
type Effect uint8

const (
	AddClickDamage Effect = iota
	AddAutoClick
	MulCoins
)

// Item is one shop entry.
type Item struct {
	ID     string
	Glyph  string
	Name   string
	Cost   float64
	Effect Effect
	Amount float64
}

// DefaultCatalogue returns the stock shop, cheapest first.
func DefaultCatalogue() []Item {
	return []Item{
		{ID: "click_damage", Glyph: "💪", Name: "Click Damage +10", Cost: 100, Effect: AddClickDamage, Amount: 10},
		{ID: "auto_click", Glyph: "⚡", Name: "Auto Click +5/s", Cost: 200, Effect: AddAutoClick, Amount: 5},
		{ID: "mega_click", Glyph: "🔨", Name: "Mega Click +50", Cost: 500, Effect: AddClickDamage, Amount: 50},
		{ID: "coin_multiplier", Glyph: "💰", Name: "Coin Multiplier x2", Cost: 1000, Effect: MulCoins, Amount: 2},
	}
}

// Shop returns the engine's catalogue.
func (e *Engine) Shop() []Item { return e.cfg.Shop }

// Visible reports whether the i-th catalogue item is shown to the player.
// The first item always is; the rest appear once lifetime earnings reach
// half their cost.
func (e *Engine) Visible(st *State, i int) bool {
	if i < 0 || i >= len(e.cfg.Shop) {
		return false
	}
	return i == 0 || st.LifetimeEarnings >= e.cfg.Shop[i].Cost/2
}

// Purchase buys the item with the given id. Coins drop by its cost;
// LifetimeEarnings is untouched. On error st is returned unchanged.
func (e *Engine) Purchase(st *State, id string) (*State, error) {
	idx := -1
	for i, it := range e.cfg.Shop {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return st, fmt.Errorf("buy %s: %w", id, ErrUnknownItem)
	}
	item := e.cfg.Shop[idx]
	if !e.Visible(st, idx) {
		return st, fmt.Errorf("buy %s: %w", id, ErrItemHidden)
	}
	if st.Coins < item.Cost {
		return st, fmt.Errorf("buy %s: need %.0f, have %.0f: %w", id, item.Cost, st.Coins, ErrInsufficientCoins)
	}

	next := st.clone()
	next.Coins -= item.Cost
	switch item.Effect {
	case AddClickDamage:
		next.ClickDamage += item.Amount
	case AddAutoClick:
		next.AutoClickDamage += item.Amount
	case MulCoins:
		next.CoinMultiplier *= item.Amount
	}
	return next, nil
}

// Purchase buys id with the Default engine.
func Purchase(st *State, id string) (*State, error) { return Default.Purchase(st, id) }
