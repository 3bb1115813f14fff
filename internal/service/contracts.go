package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck/internal/domain/entities"
)

// Tone is the color a widget's text is drawn with.
type Tone int

const (
	ToneNormal Tone = iota
	ToneCorrect
	ToneWrong
)

// Screen is the retained-mode view driven by the World. Widgets keep their
// content across Resize calls; nothing is visible until Flush.
type Screen interface {
	FooterView
	ShowQuestion(text string, tone Tone)
	ShowChoices(choices [4]string)
	MarkChoice(index int, tone Tone)
	HideChoices()
	ShowInput(text string, cursor int, correctAnswer string)
	HideInput()
	Resize(width, height int)
	Flush()
}

// SessionRepository stores finished study sessions.
type SessionRepository interface {
	Save(ctx context.Context, rec *entities.SessionRecord) error
	ListRecent(ctx context.Context, limit int) ([]*entities.SessionRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.SessionRecord, error)
}
