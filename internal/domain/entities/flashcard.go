// Package entities contains domain entities used across the application.
package entities

import (
	"math/rand"
)

// Side is one face of a flashcard.
type Side int

const (
	Term       Side = iota // the term face
	Definition             // the definition face
)

// Sides lists both faces in index order.
var Sides = [2]Side{Term, Definition}

// Not returns the complementary side.
func (s Side) Not() Side {
	if s == Term {
		return Definition
	}
	return Term
}

// String returns the lowercase name of the side.
func (s Side) String() string {
	switch s {
	case Term:
		return "term"
	case Definition:
		return "definition"
	default:
		return "unknown"
	}
}

// Color is the display color associated with a side.
type Color string

const (
	ColorBlue  Color = "blue"
	ColorGreen Color = "green"
)

// Color returns the display color used for the side.
func (s Side) Color() Color {
	if s == Term {
		return ColorBlue
	}
	return ColorGreen
}

// Text holds one side of a flashcard. The first numDisplay values are displayable,
// the rest are accepted as answers but never shown.
type Text struct {
	values     []string
	numDisplay int
}

// NewText creates a Text with the given displayable values.
func NewText(display ...string) Text {
	values := append([]string(nil), display...)
	return Text{values: values, numDisplay: len(values)}
}

// PushDisplay adds a displayable variant.
func (t *Text) PushDisplay(value string) {
	t.values = append(t.values, "")
	copy(t.values[t.numDisplay+1:], t.values[t.numDisplay:])
	t.values[t.numDisplay] = value
	t.numDisplay++
}

// PushAccepted adds a variant that is accepted as an answer but never displayed.
func (t *Text) PushAccepted(value string) {
	t.values = append(t.values, value)
}

// IsValid reports whether the side has at least one displayable variant.
func (t Text) IsValid() bool {
	return t.numDisplay > 0
}

// Displayable returns the variants that may be shown.
func (t Text) Displayable() []string {
	return t.values[:t.numDisplay]
}

// OtherAccepted returns the variants that are accepted but never displayed.
func (t Text) OtherAccepted() []string {
	return t.values[t.numDisplay:]
}

// All returns every variant accepted as an answer.
func (t Text) All() []string {
	return t.values
}

// Display picks one displayable variant uniformly at random.
func (t Text) Display(rng *rand.Rand) string {
	d := t.Displayable()
	if len(d) == 1 {
		return d[0]
	}
	return d[rng.Intn(len(d))]
}

// Flashcard is a single term/definition pair.
type Flashcard struct {
	Term       Text
	Definition Text
}

// IsValid reports whether both sides have a displayable variant.
func (c *Flashcard) IsValid() bool {
	return c.Term.IsValid() && c.Definition.IsValid()
}

// Side returns the text for the given face.
func (c *Flashcard) Side(s Side) *Text {
	if s == Term {
		return &c.Term
	}
	return &c.Definition
}
