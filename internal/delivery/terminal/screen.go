package terminal

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/flashdeck/flashdeck/internal/service"
)

const msgTooSmall = "Terminal too small"

type outline struct {
	h, v, tl, tr, bl, br rune
}

var (
	outlineDouble = outline{'═', '║', '╔', '╗', '╚', '╝'}
	outlineLight  = outline{'─', '│', '┌', '┐', '└', '┘'}
)

var footerColors = map[service.FooterColor]tcell.Color{
	service.Black:  tcell.ColorBlack,
	service.Red:    tcell.ColorRed,
	service.Yellow: tcell.ColorYellow,
	service.Green:  tcell.ColorGreen,
}

func toneStyle(t service.Tone) tcell.Style {
	switch t {
	case service.ToneCorrect:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case service.ToneWrong:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}

type choiceState struct {
	text string
	tone service.Tone
}

type inputState struct {
	visible bool
	text    string
	cursor  int
	correct string
}

// Screen is the tcell implementation of service.Screen. It keeps the content
// of every widget and repaints all of them on Flush.
type Screen struct {
	screen    tcell.Screen
	minWidth  int
	minHeight int
	layout    Layout

	question     string
	questionTone service.Tone

	choicesVisible bool
	choices        [4]choiceState

	input    inputState
	segments [4]service.Segment
}

// NewScreen wraps an initialized tcell screen.
func NewScreen(screen tcell.Screen, minWidth, minHeight int) *Screen {
	w, h := screen.Size()
	return &Screen{
		screen:    screen,
		minWidth:  minWidth,
		minHeight: minHeight,
		layout:    NewLayout(w, h, minWidth, minHeight),
	}
}

// ShowQuestion sets the question box text.
func (s *Screen) ShowQuestion(text string, tone service.Tone) {
	s.question = text
	s.questionTone = tone
}

// ShowChoices shows the four answer boxes.
func (s *Screen) ShowChoices(choices [4]string) {
	s.choicesVisible = true
	for i, c := range choices {
		s.choices[i] = choiceState{text: c}
	}
}

// MarkChoice colors one answer box.
func (s *Screen) MarkChoice(index int, tone service.Tone) {
	if index >= 0 && index < len(s.choices) {
		s.choices[index].tone = tone
	}
}

// HideChoices hides the answer boxes.
func (s *Screen) HideChoices() {
	s.choicesVisible = false
}

// ShowInput shows the text input with its cursor. A non-empty correctAnswer is
// shown below the typed text.
func (s *Screen) ShowInput(text string, cursor int, correctAnswer string) {
	s.input = inputState{visible: true, text: text, cursor: cursor, correct: correctAnswer}
}

// HideInput hides the text input and the cursor.
func (s *Screen) HideInput() {
	s.input.visible = false
}

// Resize recomputes the layout.
func (s *Screen) Resize(width, height int) {
	s.layout = NewLayout(width, height, s.minWidth, s.minHeight)
	s.screen.Sync()
}

// DrawFooter stores and paints the progress bar.
func (s *Screen) DrawFooter(segments [4]service.Segment) {
	s.segments = segments
	if !s.layout.TooSmall {
		s.drawFooter()
	}
}

// Flush repaints every widget and shows the result.
func (s *Screen) Flush() {
	s.screen.Clear()
	s.screen.HideCursor()

	if s.layout.TooSmall {
		drawText(s.screen, 0, 0, s.layout.Width, msgTooSmall, tcell.StyleDefault)
		s.screen.Show()
		return
	}

	s.drawBox(s.layout.Question, outlineDouble, "", s.question, toneStyle(s.questionTone))

	if s.choicesVisible {
		for i, c := range s.choices {
			s.drawBox(s.layout.Choices[i], outlineLight, strconv.Itoa(i+1), c.text, toneStyle(c.tone))
		}
	}

	if s.input.visible {
		s.drawInput()
	}

	s.drawFooter()
	s.screen.Show()
}

func (s *Screen) drawBox(r Rect, o outline, label, text string, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	border := tcell.StyleDefault
	right, bottom := r.X+r.W-1, r.Y+r.H-1

	for x := r.X + 1; x < right; x++ {
		s.screen.SetContent(x, r.Y, o.h, nil, border)
		s.screen.SetContent(x, bottom, o.h, nil, border)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.screen.SetContent(r.X, y, o.v, nil, border)
		s.screen.SetContent(right, y, o.v, nil, border)
	}
	s.screen.SetContent(r.X, r.Y, o.tl, nil, border)
	s.screen.SetContent(right, r.Y, o.tr, nil, border)
	s.screen.SetContent(r.X, bottom, o.bl, nil, border)
	s.screen.SetContent(right, bottom, o.br, nil, border)

	if label != "" {
		drawText(s.screen, r.X+2, r.Y, r.W-4, label, border)
	}

	inner := r.Inner()
	if inner.Empty() {
		return
	}
	lines := wordWrap(text, inner.W)
	if len(lines) > inner.H {
		lines = lines[:inner.H]
	}
	top := inner.Y + (inner.H-len(lines))/2
	for i, line := range lines {
		x := inner.X + (inner.W-runewidth.StringWidth(line))/2
		drawText(s.screen, x, top+i, inner.W, line, style)
	}
}

func (s *Screen) drawInput() {
	r := s.layout.Input
	s.drawBox(r, outlineDouble, "", "", tcell.StyleDefault)

	inner := r.Inner()
	if inner.Empty() {
		return
	}

	// Scroll so the cursor stays inside the box.
	text := []rune(s.input.text)
	cursor := min(max(s.input.cursor, 0), len(text))
	start := 0
	for runewidth.StringWidth(string(text[start:cursor])) >= inner.W && start < cursor {
		start++
	}
	visible := string(text[start:])
	drawText(s.screen, inner.X, inner.Y, inner.W, visible, toneStyle(service.ToneNormal))

	if s.input.correct != "" && inner.H > 1 {
		drawText(s.screen, inner.X, inner.Y+inner.H-1, inner.W, s.input.correct, toneStyle(service.ToneCorrect))
	}

	cx := inner.X + runewidth.StringWidth(string(text[start:cursor]))
	s.screen.ShowCursor(cx, inner.Y)
}

func (s *Screen) drawFooter() {
	x := 0
	y := s.layout.FooterY
	for _, seg := range s.segments {
		if seg.Width <= 0 {
			continue
		}
		style := tcell.StyleDefault.Background(footerColors[seg.Color]).Foreground(tcell.ColorWhite)
		label := runewidth.Truncate(strconv.Itoa(seg.Count), seg.Width, "")
		pad := seg.Width - runewidth.StringWidth(label)
		left := pad / 2

		for i := 0; i < seg.Width; i++ {
			s.screen.SetContent(x+i, y, ' ', nil, style)
		}
		drawText(s.screen, x+left, y, seg.Width-left, label, style)
		x += seg.Width
	}
}

// drawText writes text starting at (x, y), clipped to width cells.
func drawText(screen tcell.Screen, x, y, width int, text string, style tcell.Style) {
	used := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if used+w > width {
			return
		}
		screen.SetContent(x+used, y, r, nil, style)
		used += w
	}
}
