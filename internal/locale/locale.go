// Package locale holds the player-facing message catalogue. Messages are
// looked up by key (GATE_LOCKED, KILLED, ...) from an embedded .po file.
package locale

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed en.po
var english []byte

var catalogue = load(english)

func load(b []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(b)
	return po
}

// Get returns the message for key, formatted with args. Unknown keys come
// back as the key itself.
func Get(key string, args ...interface{}) string {
	return catalogue.Get(key, args...)
}

// Use replaces the active catalogue with the .po data in b.
func Use(b []byte) {
	catalogue = load(b)
}
