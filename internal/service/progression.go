package service

import (
	"fmt"

	"github.com/flashdeck/flashdeck/internal/domain/entities"
)

// Mode is a study mode.
type Mode int

const (
	ModeMatching Mode = iota // multiple-choice recall
	ModeText                 // free-text recall
)

func (m Mode) String() string {
	if m == ModeMatching {
		return "matching"
	}
	return "text"
}

// StudyType is the stage an item sits in. Repeat marks the confirming second
// repetition in the same mode.
type StudyType struct {
	Mode   Mode
	Repeat bool
}

var (
	Matching0 = StudyType{Mode: ModeMatching}
	Matching1 = StudyType{Mode: ModeMatching, Repeat: true}
	Text0     = StudyType{Mode: ModeText}
	Text1     = StudyType{Mode: ModeText, Repeat: true}
)

func (s StudyType) String() string {
	return fmt.Sprintf("%s(%t)", s.Mode, s.Repeat)
}

// Less orders matching before text, and first repetitions before repeats.
func (s StudyType) Less(other StudyType) bool {
	if s.Mode != other.Mode {
		return s.Mode < other.Mode
	}
	return !s.Repeat && other.Repeat
}

type stage struct {
	typ   StudyType
	color FooterColor
}

type modes struct {
	matching bool
	text     bool
}

func modesOf(rs entities.RecallSettings) modes {
	return modes{matching: rs.Matching, text: rs.Text}
}

// progressions is the only place that decides which stage follows which and what
// bucket each stage belongs to. Reaching the end of a sequence masters the item.
var progressions = map[modes][]stage{
	{matching: true}: {
		{Matching0, Black},
		{Matching1, Yellow},
	},
	{text: true}: {
		{Text0, Black},
		{Text1, Yellow},
	},
	{matching: true, text: true}: {
		{Matching0, Black},
		{Text0, Red},
		{Text1, Yellow},
	},
}

// FirstStudyType returns the entry stage for the settings. Matching takes priority.
// ok is false when no mode is enabled.
func FirstStudyType(rs entities.RecallSettings) (StudyType, bool) {
	switch {
	case rs.Matching:
		return Matching0, true
	case rs.Text:
		return Text0, true
	default:
		return StudyType{}, false
	}
}

func locate(s StudyType, rs entities.RecallSettings) ([]stage, int) {
	seq, ok := progressions[modesOf(rs)]
	if ok {
		for i, st := range seq {
			if st.typ == s {
				return seq, i
			}
		}
	}
	panic(fmt.Sprintf("bad progression: %s with matching = %t and text = %t", s, rs.Matching, rs.Text))
}

// Progress returns the stage after s and its bucket. ok is false when the item
// is mastered, in which case the bucket is Green.
func Progress(s StudyType, rs entities.RecallSettings) (next StudyType, color FooterColor, ok bool) {
	seq, i := locate(s, rs)
	if i == len(seq)-1 {
		return StudyType{}, Green, false
	}
	return seq[i+1].typ, seq[i+1].color, true
}

// Regress returns the stage one step back and its bucket. ok is false when s is
// already the entry stage.
func Regress(s StudyType, rs entities.RecallSettings) (prev StudyType, color FooterColor, ok bool) {
	seq, i := locate(s, rs)
	if i == 0 {
		return StudyType{}, 0, false
	}
	return seq[i-1].typ, seq[i-1].color, true
}

// ColorOf returns the bucket of stage s.
func ColorOf(s StudyType, rs entities.RecallSettings) FooterColor {
	seq, i := locate(s, rs)
	return seq[i].color
}
