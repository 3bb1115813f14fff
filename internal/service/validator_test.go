package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flashdeck/flashdeck/internal/domain/entities"
)

func TestAnswerValidator_Matches(t *testing.T) {
	v := NewAnswerValidator(0.8)

	hello := entities.NewText("Hello World")
	cafe := entities.NewText("café")
	greeting := entities.NewText("hello!")
	word := entities.NewText("hello")
	strasse := entities.NewText("Straße")

	withAccents := entities.RecallSettings{Text: true, Lenience: entities.Lenience{IgnoreAccents: true}}
	withPunct := entities.RecallSettings{Text: true, Lenience: entities.Lenience{IgnorePunctuation: true}}
	withFuzzy := entities.RecallSettings{Text: true, Lenience: entities.Lenience{Fuzzy: true}}

	tests := []struct {
		name     string
		answer   string
		side     *entities.Text
		settings entities.RecallSettings
		want     bool
	}{
		{name: "exact", answer: "Hello World", side: &hello, settings: textOnly, want: true},
		{name: "case and spacing", answer: "  hello   WORLD ", side: &hello, settings: textOnly, want: true},
		{name: "full case folding", answer: "STRASSE", side: &strasse, settings: textOnly, want: true},
		{name: "different word", answer: "hello there", side: &hello, settings: textOnly, want: false},
		{name: "accent required", answer: "cafe", side: &cafe, settings: textOnly, want: false},
		{name: "accent ignored", answer: "cafe", side: &cafe, settings: withAccents, want: true},
		{name: "punctuation required", answer: "hello", side: &greeting, settings: textOnly, want: false},
		{name: "punctuation ignored", answer: "hello", side: &greeting, settings: withPunct, want: true},
		{name: "typo rejected", answer: "helo", side: &word, settings: textOnly, want: false},
		{name: "typo within threshold", answer: "helo", side: &word, settings: withFuzzy, want: true},
		{name: "typo beyond threshold", answer: "hxxlo", side: &word, settings: withFuzzy, want: false},
		{name: "empty answer", answer: "", side: &word, settings: withFuzzy, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Matches(tt.answer, tt.side, tt.settings))
		})
	}
}

func TestAnswerValidator_OtherAccepted(t *testing.T) {
	v := NewAnswerValidator(0.8)

	side := entities.NewText("hello")
	side.PushAccepted("hi")

	assert.True(t, v.Matches("hi", &side, textOnly))
	assert.True(t, v.Matches("hello", &side, textOnly))
	assert.False(t, v.Matches("hey", &side, textOnly))
}

func TestNewAnswerValidator_DefaultThreshold(t *testing.T) {
	assert.Equal(t, 0.8, NewAnswerValidator(0).threshold)
	assert.Equal(t, 0.8, NewAnswerValidator(1.5).threshold)
	assert.Equal(t, 0.5, NewAnswerValidator(0.5).threshold)
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("abc", "abc"))
	assert.Equal(t, 3, levenshteinDistance("", "abc"))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
	assert.Equal(t, 1, levenshteinDistance("añb", "ab"))
}
