package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/flashdeck/flashdeck/internal/domain/entities"
)

// AnswerValidator validates user answers against the accepted variants of a flashcard side.
type AnswerValidator struct {
	threshold float64 // Similarity threshold (0.0 - 1.0) used by fuzzy lenience
}

// NewAnswerValidator creates a new AnswerValidator.
func NewAnswerValidator(threshold float64) *AnswerValidator {
	if threshold <= 0 || threshold > 1 {
		threshold = 0.8 // 80% similarity required
	}
	return &AnswerValidator{
		threshold: threshold,
	}
}

// Matches reports whether submitted equals any displayable or other accepted
// variant of the side, after normalization.
func (v *AnswerValidator) Matches(submitted string, side *entities.Text, settings entities.RecallSettings) bool {
	user := v.normalize(submitted, settings.Lenience)

	for _, accepted := range side.All() {
		correct := v.normalize(accepted, settings.Lenience)

		// Exact match
		if user == correct {
			return true
		}

		if settings.Lenience.Fuzzy && correct != "" && v.similarity(user, correct) >= v.threshold {
			return true
		}
	}

	return false
}

// normalize normalizes a string for comparison.
func (v *AnswerValidator) normalize(s string, lenience entities.Lenience) string {
	// Fold case
	s = cases.Fold().String(s)

	if lenience.IgnoreAccents {
		s = stripAccents(s)
	}

	if lenience.IgnorePunctuation {
		s = strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) {
				return -1
			}
			return r
		}, s)
	}

	// Trim and remove extra whitespace
	s = strings.Join(strings.Fields(s), " ")

	return s
}

// similarity calculates the similarity between two strings using Levenshtein distance.
func (v *AnswerValidator) similarity(s1, s2 string) float64 {
	distance := levenshteinDistance(s1, s2)
	maxLen := max(len([]rune(s1)), len([]rune(s2)))

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// stripAccents removes combining marks after canonical decomposition.
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// levenshteinDistance calculates the Levenshtein distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	rows := len(r1) + 1
	cols := len(r2) + 1

	// Use two rows instead of full matrix for space optimization
	prev := make([]int, cols)
	curr := make([]int, cols)

	for j := 0; j < cols; j++ {
		prev[j] = j
	}

	for i := 1; i < rows; i++ {
		curr[0] = i

		for j := 1; j < cols; j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}

			curr[j] = min(
				curr[j-1]+1,    // Insertion
				prev[j]+1,      // Deletion
				prev[j-1]+cost, // Substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[cols-1]
}
