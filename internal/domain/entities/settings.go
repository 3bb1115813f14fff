package entities

// Lenience controls how strictly a typed answer is compared with the accepted ones.
type Lenience struct {
	IgnoreAccents     bool // strip combining marks before comparing
	IgnorePunctuation bool // drop punctuation before comparing
	Fuzzy             bool // accept answers above the configured similarity
}

// RecallSettings enables the study modes used when recalling one side of a set.
type RecallSettings struct {
	Matching bool // multiple-choice recall
	Text     bool // free-text recall
	Lenience Lenience
}

// IsUsed reports whether any study mode is enabled.
func (rs RecallSettings) IsUsed() bool {
	return rs.Matching || rs.Text
}

// Set is a parsed flashcard set.
type Set struct {
	RecallT RecallSettings // settings for recalling the term
	RecallD RecallSettings // settings for recalling the definition
	Cards   []Flashcard
}

// RecallSettings returns the settings governing recall of the given side.
func (s *Set) RecallSettings(side Side) RecallSettings {
	if side == Term {
		return s.RecallT
	}
	return s.RecallD
}
