package controller

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// rune keys live above tcell's own key range so both kinds fit in one event map.
const runeKeyBase tcell.Key = 1000

// Keys used by the app.
const (
	KeyA     = runeKeyBase + 'a'
	KeyC     = runeKeyBase + 'c'
	KeyD     = runeKeyBase + 'd'
	KeyE     = runeKeyBase + 'e'
	KeyN     = runeKeyBase + 'n'
	KeyQ     = runeKeyBase + 'q'
	KeyR     = runeKeyBase + 'r'
	KeyX     = runeKeyBase + 'x'
	KeyPlus  = runeKeyBase + '+'
	KeyMinus = runeKeyBase + '-'
)

// AsKey folds rune events into the Key space.
func AsKey(evt *tcell.EventKey) tcell.Key {
	if evt.Key() == tcell.KeyRune {
		return runeKeyBase + tcell.Key(evt.Rune())
	}

	return evt.Key()
}

func keyName(key tcell.Key) string {
	if key > runeKeyBase {
		return string(rune(key - runeKeyBase))
	}

	if name, ok := tcell.KeyNames[key]; ok {
		return name
	}

	return fmt.Sprintf("%d", key)
}
