package terminal

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// wordWrap breaks text into lines no wider than width display cells. Words
// wider than a line are split.
func wordWrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		var cur strings.Builder
		curWidth := 0

		flush := func() {
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
		}

		for _, word := range strings.Fields(paragraph) {
			ww := runewidth.StringWidth(word)

			if curWidth > 0 && curWidth+1+ww > width {
				flush()
			}

			for ww > width {
				if curWidth > 0 {
					flush()
				}
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					// a single rune wider than the line
					_, size := utf8.DecodeRuneInString(word)
					head = word[:size]
				}
				lines = append(lines, head)
				word = word[len(head):]
				ww = runewidth.StringWidth(word)
			}

			if word == "" {
				continue
			}
			if curWidth > 0 {
				cur.WriteByte(' ')
				curWidth++
			}
			cur.WriteString(word)
			curWidth += ww
		}

		if curWidth > 0 || paragraph == "" || len(lines) == 0 {
			flush()
		}
	}

	return lines
}
