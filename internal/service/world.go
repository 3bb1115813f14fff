package service

import (
	"go.uber.org/zap"

	"github.com/flashdeck/flashdeck/internal/input"
)

const (
	msgCorrect    = "Correct!  Press any key to continue"
	msgTextFailed = "Incorrect!  Shift-Tab: typo, I know this"
)

// Flow tells the event loop whether the session goes on.
type Flow int

const (
	Continue Flow = iota
	Finished
)

// pending is the interaction the World is waiting on.
type pending interface {
	isPending()
}

type matchingPending struct {
	studying Token
	correct  int // index of the correct choice
	failed   bool
}

type textPending struct {
	studying Token
}

type textFailedPending struct {
	studying       Token
	hiddenQuestion string
	hidden         bool
	correctAnswer  string
}

type waitingPending struct{}

func (*matchingPending) isPending()   {}
func (*textPending) isPending()       {}
func (*textFailedPending) isPending() {}
func (*waitingPending) isPending()    {}

// World drives one study session: it asks questions, scores answers and moves
// items through their stages.
type World struct {
	cards     *CardList
	footer    *Footer
	screen    Screen
	validator *AnswerValidator
	logger    *zap.Logger

	line     input.Line
	question string
	choices  [4]string
	last     *Token
	pending  pending

	matchesMade  [2]int
	textsEntered [2]int
}

// NewWorld creates a World for the card list and presents the first item.
func NewWorld(
	cards *CardList,
	screen Screen,
	validator *AnswerValidator,
	logger *zap.Logger,
	width, height int,
) *World {
	screen.Resize(width, height)
	w := &World{
		cards:     cards,
		footer:    NewFooter(cards.Remaining(), width, screen),
		screen:    screen,
		validator: validator,
		logger:    logger,
	}
	w.StudyNext()
	return w
}

// StudyNext presents the next item. It returns false when nothing is left.
func (w *World) StudyNext() bool {
	defer w.screen.Flush()

	tok, ok := w.cards.NextUnstudied(w.last)
	if !ok {
		w.pending = nil
		w.logger.Info("all items mastered")
		return false
	}
	w.last = &tok

	it, _ := w.cards.Item(tok)
	w.question = w.cards.QuestionFor(tok)

	switch it.StudyType.Mode {
	case ModeMatching:
		w.screen.HideInput()
		w.screen.ShowQuestion(w.question, ToneNormal)
		choices, correct := w.cards.MatchingAnswers(tok)
		w.choices = choices
		w.screen.ShowChoices(w.choices)
		w.pending = &matchingPending{studying: tok, correct: correct}
	case ModeText:
		w.screen.HideChoices()
		w.screen.ShowQuestion(w.question, ToneNormal)
		w.line.Clear()
		w.screen.ShowInput("", 0, "")
		w.pending = &textPending{studying: tok}
	}

	return true
}

// Resize re-lays out the screen for a new terminal size.
func (w *World) Resize(width, height int) {
	w.screen.Resize(width, height)
	w.footer.Resize(width)
	w.screen.Flush()
}

// KeyPressed interprets a key for the pending interaction.
func (w *World) KeyPressed(k input.Key) Flow {
	switch p := w.pending.(type) {
	case *matchingPending:
		w.matchingKey(p, k)
		return Continue
	case *textPending:
		w.textKey(p, k)
		return Continue
	case *textFailedPending:
		return w.textFailedKey(p, k)
	case *waitingPending:
		return w.next()
	default:
		return Finished
	}
}

func (w *World) matchingKey(p *matchingPending, k input.Key) {
	n := k.Digit()
	if n < 1 || n > len(w.choices) {
		return
	}
	index := n - 1

	it, _ := w.cards.Item(p.studying)
	side := it.Side
	w.matchesMade[side]++

	// Choices are judged exactly. A duplicate of the correct text counts as correct.
	if w.choices[index] == w.choices[p.correct] {
		if !p.failed {
			w.cards.Progress(p.studying, w.footer)
		}
		w.pending = &waitingPending{}
		w.screen.ShowQuestion(msgCorrect, ToneCorrect)
		w.screen.MarkChoice(index, ToneCorrect)
	} else {
		p.failed = true
		w.cards.Fail(p.studying)
		w.cards.Regress(p.studying, w.footer)
		w.screen.MarkChoice(index, ToneWrong)
	}
	w.screen.Flush()
}

func (w *World) textKey(p *textPending, k input.Key) {
	defer w.screen.Flush()

	answer, submitted := w.line.Handle(k)
	if !submitted {
		w.screen.ShowInput(w.line.Text(), w.line.Cursor(), "")
		return
	}

	it, _ := w.cards.Item(p.studying)
	side := it.Side
	w.textsEntered[side]++

	if w.validator.Matches(answer, it.Card.Side(side), w.cards.RecallSettings(side)) {
		w.cards.Progress(p.studying, w.footer)
		w.screen.ShowQuestion(msgCorrect, ToneCorrect)
		w.screen.HideInput()
		w.pending = &waitingPending{}
		return
	}

	w.logger.Debug("wrong text answer",
		zap.Stringer("side", side),
		zap.String("answer", answer),
	)
	correct := w.cards.AnswerFor(p.studying)
	w.screen.ShowQuestion(msgTextFailed, ToneWrong)
	w.screen.ShowInput(w.line.Text(), w.line.Cursor(), correct)
	w.cards.Fail(p.studying)
	w.cards.Regress(p.studying, w.footer)
	w.pending = &textFailedPending{
		studying:       p.studying,
		hiddenQuestion: w.question,
		hidden:         true,
		correctAnswer:  correct,
	}
}

func (w *World) textFailedKey(p *textFailedPending, k input.Key) Flow {
	if k.Code == input.KeyBacktab {
		w.cards.Forgive(p.studying, w.footer)
		w.screen.HideInput()
		return w.next()
	}

	if p.hidden {
		w.screen.ShowQuestion(p.hiddenQuestion, ToneNormal)
		p.hidden = false
	}

	w.line.Handle(k)
	it, _ := w.cards.Item(p.studying)
	if w.validator.Matches(w.line.Text(), it.Card.Side(it.Side), w.cards.RecallSettings(it.Side)) {
		w.screen.HideInput()
		return w.next()
	}

	w.screen.ShowInput(w.line.Text(), w.line.Cursor(), p.correctAnswer)
	w.screen.Flush()
	return Continue
}

func (w *World) next() Flow {
	if w.StudyNext() {
		return Continue
	}
	return Finished
}

// Done reports whether every item has been mastered.
func (w *World) Done() bool {
	return w.pending == nil
}

// Footer returns the bucket tracker.
func (w *World) Footer() *Footer {
	return w.footer
}

// Report summarizes the session so far. It can be called at any time.
func (w *World) Report() *Report {
	return NewReport(w.cards.Fails(), w.matchesMade, w.textsEntered)
}

// Attempts returns matching and text attempts per side.
func (w *World) Attempts() (matches, texts [2]int) {
	return w.matchesMade, w.textsEntered
}
