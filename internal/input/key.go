// Package input defines the key events the study screen understands and the
// single-line editor used for typed answers.
package input

// KeyCode identifies a key.
type KeyCode int

const (
	KeyRune      KeyCode = iota // a printable character, see Key.Rune
	KeyEnter                    // submit
	KeyBackspace                // delete before the cursor
	KeyDelete                   // delete under the cursor
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyBacktab    // shift-tab, "I knew this"
	KeyInterrupt  // ctrl-c
	KeyEscape
	KeyOther // anything else
)

// Key is a single key press.
type Key struct {
	Code KeyCode
	Rune rune
}

// Rune returns the key for a printable character.
func Rune(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Code returns the key for a non-printable key code.
func Code(c KeyCode) Key {
	return Key{Code: c}
}

// Digit returns the 1-based digit of the key, or 0 if it is not one of 1..9.
func (k Key) Digit() int {
	if k.Code != KeyRune || k.Rune < '1' || k.Rune > '9' {
		return 0
	}
	return int(k.Rune - '0')
}
