package appstate

import (
	"unicode"

	"golang.org/x/mobile/event/key"
)

// KeyShortcut describes a keyboard combination that triggers an action. A
// shortcut matches on Rune when it is set, otherwise on Code.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

const shortcutModifiers = key.ModControl | key.ModShift | key.ModAlt | key.ModMeta

type keyBinding struct {
	KeyShortcut
	action string
}

// keyBindings lists the editor shortcuts. Ctrl+Shift+C comes before Ctrl+C so
// the exact modifier match wins.
var keyBindings = []keyBinding{
	{KeyShortcut{Rune: 's', Modifiers: key.ModControl}, "save"},
	{KeyShortcut{Rune: 'c', Modifiers: key.ModControl | key.ModShift}, "copyscript"},
	{KeyShortcut{Rune: 'c', Modifiers: key.ModControl}, "copy"},
	{KeyShortcut{Rune: 'l', Modifiers: key.ModControl}, "clear"},
	{KeyShortcut{Rune: 'q', Modifiers: key.ModControl}, "quit"},
	{KeyShortcut{Code: key.CodeDeleteForward}, "delete"},
	{KeyShortcut{Code: key.CodeDeleteBackspace}, "delete"},
	{KeyShortcut{Code: key.CodeEscape}, "deselect"},
}

// keyCodeRunes lets Ctrl combinations match when the driver reports no rune.
var keyCodeRunes = map[key.Code]rune{
	key.CodeS: 's',
	key.CodeC: 'c',
	key.CodeL: 'l',
	key.CodeQ: 'q',
}

// matchShortcut returns the action bound to a key press.
func matchShortcut(e key.Event) (string, bool) {
	if e.Direction != key.DirPress {
		return "", false
	}
	mods := e.Modifiers & shortcutModifiers
	r := unicode.ToLower(e.Rune)
	if r < ' ' {
		r = keyCodeRunes[e.Code]
	}
	for _, b := range keyBindings {
		if b.Modifiers != mods {
			continue
		}
		if b.Rune != 0 && b.Rune == r {
			return b.action, true
		}
		if b.Rune == 0 && b.Code == e.Code {
			return b.action, true
		}
	}
	return "", false
}
