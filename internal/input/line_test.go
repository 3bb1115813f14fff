package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func typeString(l *Line, s string) {
	for _, r := range s {
		l.Handle(Rune(r))
	}
}

func TestLine_Editing(t *testing.T) {
	var l Line
	typeString(&l, "helo")
	assert.Equal(t, "helo", l.Text())
	assert.Equal(t, 4, l.Cursor())

	l.Handle(Code(KeyLeft))
	l.Handle(Rune('l'))
	assert.Equal(t, "hello", l.Text())
	assert.Equal(t, 4, l.Cursor())

	l.Handle(Code(KeyHome))
	l.Handle(Code(KeyDelete))
	assert.Equal(t, "ello", l.Text())

	l.Handle(Code(KeyBackspace))
	assert.Equal(t, "ello", l.Text(), "backspace at start is a no-op")

	l.Handle(Code(KeyEnd))
	l.Handle(Code(KeyBackspace))
	assert.Equal(t, "ell", l.Text())

	l.Handle(Code(KeyRight))
	assert.Equal(t, 3, l.Cursor())
}

func TestLine_MultibyteRunes(t *testing.T) {
	var l Line
	typeString(&l, "ñandú")
	l.Handle(Code(KeyBackspace))
	assert.Equal(t, "ñand", l.Text())
	assert.Equal(t, 4, l.Cursor())
}

func TestLine_Submit(t *testing.T) {
	var l Line
	typeString(&l, "answer")

	got, ok := l.Handle(Code(KeyEnter))
	assert.True(t, ok)
	assert.Equal(t, "answer", got)
	assert.Equal(t, "answer", l.Text())

	_, ok = l.Handle(Rune('x'))
	assert.False(t, ok)

	l.Clear()
	assert.Equal(t, "", l.Text())
	assert.Equal(t, 0, l.Cursor())
}

func TestKey_Digit(t *testing.T) {
	assert.Equal(t, 1, Rune('1').Digit())
	assert.Equal(t, 4, Rune('4').Digit())
	assert.Equal(t, 0, Rune('0').Digit())
	assert.Equal(t, 0, Rune('a').Digit())
	assert.Equal(t, 0, Code(KeyEnter).Digit())
}
