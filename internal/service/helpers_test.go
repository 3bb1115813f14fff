package service

import (
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"github.com/flashdeck/flashdeck/internal/domain/entities"
)

var (
	matchingOnly = entities.RecallSettings{Matching: true}
	textOnly     = entities.RecallSettings{Text: true}
	bothModes    = entities.RecallSettings{Matching: true, Text: true}
)

func card(term, definition string) entities.Flashcard {
	return entities.Flashcard{Term: entities.NewText(term), Definition: entities.NewText(definition)}
}

// definitionSet builds a set in which only the definition side is recalled.
func definitionSet(rs entities.RecallSettings, cards ...entities.Flashcard) *entities.Set {
	return &entities.Set{RecallD: rs, Cards: cards}
}

func newTestCardList(t *testing.T, set *entities.Set) *CardList {
	t.Helper()
	cfg := StudyConfig{ResampleAttempts: 64, DistractorAttempts: 64}
	return NewCardList(set, cfg, rand.New(rand.NewSource(1)), zap.NewNop())
}

type recordingView struct {
	draws [][4]Segment
}

func (v *recordingView) DrawFooter(segments [4]Segment) {
	v.draws = append(v.draws, segments)
}
