package service

import (
	"cmp"
	"slices"

	"github.com/flashdeck/flashdeck/internal/domain/entities"
)

// StatsLine is one row of the report, split by side.
type StatsLine struct {
	Term       int
	Definition int
}

// Total returns the sum of both sides.
func (l StatsLine) Total() int {
	return l.Term + l.Definition
}

func lineOf(v [2]int) StatsLine {
	return StatsLine{Term: v[entities.Term], Definition: v[entities.Definition]}
}

// StatsSection holds attempts and fails for one study mode.
type StatsSection struct {
	Made  StatsLine
	Fails StatsLine
}

// IsUsed reports whether any attempt was made in this mode.
func (s StatsSection) IsUsed() bool {
	return s.Made.Total() > 0
}

// FailedCard is one card listed in the report.
type FailedCard struct {
	Fails    FailCount
	Question string
	Answer   string
	Side     entities.Side
	Item     FailedItem
}

// Report summarizes a study session.
type Report struct {
	Matches StatsSection
	Texts   StatsSection
	Failed  []FailedCard // ascending by fail count, then question
}

// NewReport aggregates the fail ledger and attempt counters.
func NewReport(fails []FailedItem, matchesMade, textsEntered [2]int) *Report {
	var matchFails, textFails [2]int
	failed := make([]FailedCard, 0, len(fails))

	for _, f := range fails {
		matchFails[f.Side] += f.MatchFails.Value()
		textFails[f.Side] += f.TextFails.Value()

		if f.TotalFails() == ZeroFails {
			continue
		}
		failed = append(failed, FailedCard{
			Fails:    f.TotalFails(),
			Question: f.Card.Side(f.Side.Not()).Displayable()[0],
			Answer:   f.Card.Side(f.Side).Displayable()[0],
			Side:     f.Side,
			Item:     f,
		})
	}

	slices.SortStableFunc(failed, func(a, b FailedCard) int {
		return cmp.Or(
			cmp.Compare(a.Fails, b.Fails),
			cmp.Compare(a.Question, b.Question),
		)
	})

	return &Report{
		Matches: StatsSection{Made: lineOf(matchesMade), Fails: lineOf(matchFails)},
		Texts:   StatsSection{Made: lineOf(textsEntered), Fails: lineOf(textFails)},
		Failed:  failed,
	}
}

// Total combines both modes.
func (r *Report) Total() StatsSection {
	return StatsSection{
		Made: StatsLine{
			Term:       r.Matches.Made.Term + r.Texts.Made.Term,
			Definition: r.Matches.Made.Definition + r.Texts.Made.Definition,
		},
		Fails: StatsLine{
			Term:       r.Matches.Fails.Term + r.Texts.Fails.Term,
			Definition: r.Matches.Fails.Definition + r.Texts.Fails.Definition,
		},
	}
}

// Record converts the report into an archivable session record.
func (r *Report) Record(rec *entities.SessionRecord, footer FooterCounts) {
	rec.MatchesMade = [2]int{r.Matches.Made.Term, r.Matches.Made.Definition}
	rec.TextsEntered = [2]int{r.Texts.Made.Term, r.Texts.Made.Definition}
	rec.Mastered = footer[Green]
	rec.Fails = rec.Fails[:0]
	for _, f := range r.Failed {
		rec.Fails = append(rec.Fails, entities.FailRecord{
			Side:       f.Side,
			Question:   f.Question,
			Answer:     f.Answer,
			MatchFails: f.Item.MatchFails.Value(),
			TextFails:  f.Item.TextFails.Value(),
		})
	}
}
