package input

// Line is an editable single line of text with a cursor measured in runes.
type Line struct {
	text   []rune
	cursor int
}

// Text returns the current contents.
func (l *Line) Text() string {
	return string(l.text)
}

// Cursor returns the cursor position in runes.
func (l *Line) Cursor() int {
	return l.cursor
}

// Clear empties the line.
func (l *Line) Clear() {
	l.text = l.text[:0]
	l.cursor = 0
}

// Handle applies a key. On enter it returns the submitted text and true; the
// line is left as is so the caller can keep showing it.
func (l *Line) Handle(k Key) (string, bool) {
	switch k.Code {
	case KeyRune:
		l.text = append(l.text, 0)
		copy(l.text[l.cursor+1:], l.text[l.cursor:])
		l.text[l.cursor] = k.Rune
		l.cursor++
	case KeyBackspace:
		if l.cursor > 0 {
			l.text = append(l.text[:l.cursor-1], l.text[l.cursor:]...)
			l.cursor--
		}
	case KeyDelete:
		if l.cursor < len(l.text) {
			l.text = append(l.text[:l.cursor], l.text[l.cursor+1:]...)
		}
	case KeyLeft:
		if l.cursor > 0 {
			l.cursor--
		}
	case KeyRight:
		if l.cursor < len(l.text) {
			l.cursor++
		}
	case KeyHome:
		l.cursor = 0
	case KeyEnd:
		l.cursor = len(l.text)
	case KeyEnter:
		return l.Text(), true
	}
	return "", false
}
