package service

import (
	"fmt"
	"math/rand"
	"slices"

	"go.uber.org/zap"

	"github.com/flashdeck/flashdeck/internal/domain/entities"
)

// StudyConfig holds the retry limits used when drawing random items and answers.
type StudyConfig struct {
	ResampleAttempts   int // draws made to avoid repeating the last item
	DistractorAttempts int // draws made per distractor to avoid duplicate choices
}

// DefaultStudyConfig returns the limits used when none are configured.
func DefaultStudyConfig() StudyConfig {
	return StudyConfig{ResampleAttempts: 12, DistractorAttempts: 12}
}

// Item is one card being studied on one side.
type Item struct {
	Card       *entities.Flashcard
	Side       entities.Side // side that must be recalled
	StudyType  StudyType
	Color      FooterColor
	MatchFails FailCount
	TextFails  FailCount

	id            uint64
	regressedIn   uint64 // presentation in which the item was regressed
	beforeRegress StudyType
}

// HasFailed reports whether the item was ever answered wrong.
func (it *Item) HasFailed() bool {
	return it.MatchFails.HasFailed() || it.TextFails.HasFailed()
}

// FailedItem is an item that was answered wrong at least once.
type FailedItem struct {
	Card       *entities.Flashcard
	Side       entities.Side
	MatchFails FailCount
	TextFails  FailCount
}

// TotalFails returns the saturating sum of both fail counts.
func (f FailedItem) TotalFails() FailCount {
	return f.MatchFails.Add(f.TextFails)
}

func failedFrom(it *Item) FailedItem {
	return FailedItem{
		Card:       it.Card,
		Side:       it.Side,
		MatchFails: it.MatchFails,
		TextFails:  it.TextFails,
	}
}

// Token addresses an active item for one presentation. A token never resolves
// to another item: once its item is mastered, lookups through it fail.
type Token struct {
	slot         int
	id           uint64
	presentation uint64
}

// CardList owns the working set of study items for a session.
type CardList struct {
	set     *entities.Set
	cfg     StudyConfig
	rng     *rand.Rand
	logger  *zap.Logger
	items   []*Item
	removed []FailedItem
	total   int

	nextID       uint64
	presentation uint64
}

// NewCardList creates one item per card for every side whose recall settings are used.
func NewCardList(set *entities.Set, cfg StudyConfig, rng *rand.Rand, logger *zap.Logger) *CardList {
	l := &CardList{
		set:    set,
		cfg:    cfg,
		rng:    rng,
		logger: logger,
	}

	for _, side := range entities.Sides {
		start, ok := FirstStudyType(set.RecallSettings(side))
		if !ok {
			continue
		}
		for i := range set.Cards {
			l.nextID++
			l.items = append(l.items, &Item{
				Card:      &set.Cards[i],
				Side:      side,
				StudyType: start,
				Color:     Black,
				id:        l.nextID,
			})
		}
	}
	l.total = len(l.items)

	return l
}

// NextUnstudied draws a random active item, trying not to repeat last.
// ok is false when every item is mastered.
func (l *CardList) NextUnstudied(last *Token) (Token, bool) {
	if len(l.items) == 0 {
		return Token{}, false
	}

	var lastID uint64
	if last != nil {
		lastID = last.id
	}

	index := l.rng.Intn(len(l.items))
	for attempt := 1; l.items[index].id == lastID && attempt < l.cfg.ResampleAttempts; attempt++ {
		index = l.rng.Intn(len(l.items))
	}

	l.presentation++
	return Token{slot: index, id: l.items[index].id, presentation: l.presentation}, true
}

// Item resolves a token. ok is false if the item was mastered.
func (l *CardList) Item(tok Token) (*Item, bool) {
	if tok.slot >= 0 && tok.slot < len(l.items) && l.items[tok.slot].id == tok.id {
		return l.items[tok.slot], true
	}
	for i, it := range l.items {
		if it.id == tok.id {
			return l.items[i], true
		}
	}
	return nil, false
}

func (l *CardList) mustIndex(tok Token) int {
	if tok.slot >= 0 && tok.slot < len(l.items) && l.items[tok.slot].id == tok.id {
		return tok.slot
	}
	for i, it := range l.items {
		if it.id == tok.id {
			return i
		}
	}
	panic(fmt.Sprintf("card list: stale token for item %d", tok.id))
}

// Progress advances the item after a correct answer and reports whether it was
// mastered and removed.
func (l *CardList) Progress(tok Token, footer *Footer) bool {
	index := l.mustIndex(tok)
	it := l.items[index]
	old := it.Color

	next, color, ok := Progress(it.StudyType, l.RecallSettings(it.Side))
	if ok {
		l.logger.Debug("item progressed",
			zap.Uint64("item", it.id),
			zap.Stringer("from", it.StudyType),
			zap.Stringer("to", next),
		)
		it.StudyType = next
		it.Color = color
		footer.Move(old, color)
		return false
	}

	last := len(l.items) - 1
	l.items[index] = l.items[last]
	l.items[last] = nil
	l.items = l.items[:last]

	if it.HasFailed() {
		l.removed = append(l.removed, failedFrom(it))
	}
	it.Color = color

	l.logger.Debug("item mastered",
		zap.Uint64("item", it.id),
		zap.Int("remaining", len(l.items)),
	)
	footer.Move(old, color)
	return true
}

// Regress moves the item one stage back after a wrong answer. Only the first
// call within a presentation has an effect. It reports whether the stage changed.
func (l *CardList) Regress(tok Token, footer *Footer) bool {
	it := l.items[l.mustIndex(tok)]
	if it.regressedIn == tok.presentation {
		return false
	}
	it.regressedIn = tok.presentation
	it.beforeRegress = it.StudyType

	prev, color, ok := Regress(it.StudyType, l.RecallSettings(it.Side))
	if !ok {
		return false
	}

	l.logger.Debug("item regressed",
		zap.Uint64("item", it.id),
		zap.Stringer("from", it.StudyType),
		zap.Stringer("to", prev),
	)
	old := it.Color
	it.StudyType = prev
	it.Color = color
	footer.Move(old, color)
	return true
}

// Forgive undoes a regression made in this presentation and then counts the
// answer as correct. It reports whether the item was mastered.
func (l *CardList) Forgive(tok Token, footer *Footer) bool {
	it := l.items[l.mustIndex(tok)]
	if it.regressedIn == tok.presentation && it.StudyType != it.beforeRegress {
		old := it.Color
		it.StudyType = it.beforeRegress
		it.Color = ColorOf(it.StudyType, l.RecallSettings(it.Side))
		footer.Move(old, it.Color)
	}
	it.regressedIn = 0
	return l.Progress(tok, footer)
}

// Fail counts a wrong answer in the item's current mode.
func (l *CardList) Fail(tok Token) {
	it := l.items[l.mustIndex(tok)]
	switch it.StudyType.Mode {
	case ModeMatching:
		it.MatchFails.Inc()
	case ModeText:
		it.TextFails.Inc()
	}
}

// QuestionFor returns display text of the side shown as the question.
func (l *CardList) QuestionFor(tok Token) string {
	it := l.items[l.mustIndex(tok)]
	return it.Card.Side(it.Side.Not()).Display(l.rng)
}

// AnswerFor returns display text of the side that must be recalled.
func (l *CardList) AnswerFor(tok Token) string {
	it := l.items[l.mustIndex(tok)]
	return it.Card.Side(it.Side).Display(l.rng)
}

// MatchingAnswers returns four shuffled choices and the index of the correct one.
// Distractors are redrawn to avoid duplicates; small sets may still repeat.
func (l *CardList) MatchingAnswers(tok Token) ([4]string, int) {
	it := l.items[l.mustIndex(tok)]

	var answers [4]string
	answers[0] = it.Card.Side(it.Side).Display(l.rng)
	for i := 1; i < len(answers); i++ {
		for attempt := 0; attempt < max(l.cfg.DistractorAttempts, 1); attempt++ {
			card := &l.set.Cards[l.rng.Intn(len(l.set.Cards))]
			answers[i] = card.Side(it.Side).Display(l.rng)
			if !slices.Contains(answers[:i], answers[i]) {
				break
			}
		}
	}

	correct := 0
	l.rng.Shuffle(len(answers), func(i, j int) {
		answers[i], answers[j] = answers[j], answers[i]
		switch correct {
		case i:
			correct = j
		case j:
			correct = i
		}
	})

	return answers, correct
}

// RecallSettings returns the recall settings for a side.
func (l *CardList) RecallSettings(side entities.Side) entities.RecallSettings {
	return l.set.RecallSettings(side)
}

// Remaining returns the number of active items.
func (l *CardList) Remaining() int {
	return len(l.items)
}

// Total returns the number of items created for the session.
func (l *CardList) Total() int {
	return l.total
}

// Fails returns mastered items that failed followed by active items that
// failed so far. Active items stay in the working set.
func (l *CardList) Fails() []FailedItem {
	out := make([]FailedItem, 0, len(l.removed)+len(l.items))
	out = append(out, l.removed...)
	for _, it := range l.items {
		if it.HasFailed() {
			out = append(out, failedFrom(it))
		}
	}
	return out
}
