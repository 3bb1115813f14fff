package repository

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/flashdeck/flashdeck/internal/domain/entities"
)

// BlockErrorKind classifies an error found in one block of a set file.
type BlockErrorKind int

const (
	UnknownBlock BlockErrorKind = iota // a [header] that is not recognized
	BadRecallSettings                  // a recall block with unknown settings
	BadFlashcard                       // a card block that could not be parsed
)

// BlockError is an error for one block of a set file. Line is 1-based and points
// at the first line of the block.
type BlockError struct {
	Kind  BlockErrorKind
	Name  string // header name for UnknownBlock
	Line  int
	Items []ItemError
}

func (e BlockError) Error() string {
	var b strings.Builder
	switch e.Kind {
	case UnknownBlock:
		fmt.Fprintf(&b, "Unknown block %q on line %d", e.Name, e.Line)
	case BadRecallSettings:
		fmt.Fprintf(&b, "Unable to parse recall settings on line %d:", e.Line)
	case BadFlashcard:
		fmt.Fprintf(&b, "Unable to parse flashcard on line %d:", e.Line)
	}
	for _, item := range e.Items {
		b.WriteString("\n  ")
		b.WriteString(item.Error())
	}
	return b.String()
}

// ItemErrorKind classifies an error on a single line inside a block.
type ItemErrorKind int

const (
	UnknownSetting ItemErrorKind = iota
	MissingTag
	UnknownTag
	MissingSide
)

// ItemError is an error on one line of a block. Line is zero for MissingSide.
type ItemError struct {
	Kind ItemErrorKind
	Name string // setting or tag name
	Side entities.Side
	Line int
}

func (e ItemError) Error() string {
	switch e.Kind {
	case UnknownSetting:
		return fmt.Sprintf("Unknown setting %q on line %d", e.Name, e.Line)
	case MissingTag:
		return fmt.Sprintf("Missing tag on line %d", e.Line)
	case UnknownTag:
		return fmt.Sprintf("Unknown tag %q on line %d", e.Name, e.Line)
	case MissingSide:
		return fmt.Sprintf("Missing %s", e.Side)
	default:
		return "unknown error"
	}
}

// ParseError collects every block error found in a set file.
type ParseError []BlockError

func (e ParseError) Error() string {
	parts := make([]string, 0, len(e))
	for _, be := range e {
		parts = append(parts, be.Error())
	}
	return strings.Join(parts, "\n")
}

type line struct {
	number int
	text   string
}

type lineReader struct {
	lines []line
	pos   int
}

func newLineReader(s string) *lineReader {
	raw := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	lines := make([]line, len(raw))
	for i, text := range raw {
		lines[i] = line{number: i + 1, text: strings.TrimSpace(text)}
	}
	return &lineReader{lines: lines}
}

func (r *lineReader) next() (line, bool) {
	if r.pos >= len(r.lines) {
		return line{}, false
	}
	l := r.lines[r.pos]
	r.pos++
	return l, true
}

// skipBlock consumes lines up to and including the next blank one.
func (r *lineReader) skipBlock() {
	for {
		l, ok := r.next()
		if !ok || l.text == "" {
			return
		}
	}
}

// ParseSet parses the text format of a flashcard set. Errors across the whole
// file are collected and returned together as a ParseError.
func ParseSet(s string) (*entities.Set, error) {
	set := &entities.Set{}
	var errs ParseError

	r := newLineReader(s)
	for {
		l, ok := r.next()
		if !ok {
			break
		}

		switch {
		case l.text == "":
			continue
		case strings.HasPrefix(l.text, "["):
			switch l.text {
			case "[recall_t]":
				if be, bad := parseRecallSettings(&set.RecallT, l.number, r); bad {
					errs = append(errs, be)
				}
			case "[recall_d]":
				if be, bad := parseRecallSettings(&set.RecallD, l.number, r); bad {
					errs = append(errs, be)
				}
			default:
				errs = append(errs, BlockError{Kind: UnknownBlock, Name: l.text, Line: l.number})
				r.skipBlock()
			}
		default:
			card, items := parseFlashcard(l, r)
			if len(items) > 0 {
				errs = append(errs, BlockError{Kind: BadFlashcard, Line: l.number, Items: items})
				continue
			}
			set.Cards = append(set.Cards, card)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return set, nil
}

func parseRecallSettings(rs *entities.RecallSettings, header int, r *lineReader) (BlockError, bool) {
	var items []ItemError
	for {
		l, ok := r.next()
		if !ok || l.text == "" {
			break
		}
		switch l.text {
		case "matching":
			rs.Matching = true
		case "text":
			rs.Text = true
		case "ignore_accents":
			rs.Lenience.IgnoreAccents = true
		case "ignore_punctuation":
			rs.Lenience.IgnorePunctuation = true
		case "fuzzy":
			rs.Lenience.Fuzzy = true
		default:
			items = append(items, ItemError{Kind: UnknownSetting, Name: l.text, Line: l.number})
		}
	}
	if len(items) == 0 {
		return BlockError{}, false
	}
	return BlockError{Kind: BadRecallSettings, Line: header, Items: items}, true
}

func parseFlashcard(first line, r *lineReader) (entities.Flashcard, []ItemError) {
	var card entities.Flashcard
	var items []ItemError

	l := first
	for {
		tag, value, found := strings.Cut(l.text, ":")
		value = trimFirstSpace(value)
		switch {
		case !found:
			items = append(items, ItemError{Kind: MissingTag, Line: l.number})
		case tag == "T":
			card.Term.PushDisplay(value)
		case tag == "D":
			card.Definition.PushDisplay(value)
		case tag == "t":
			card.Term.PushAccepted(value)
		case tag == "d":
			card.Definition.PushAccepted(value)
		default:
			items = append(items, ItemError{Kind: UnknownTag, Name: tag, Line: l.number})
		}

		var ok bool
		l, ok = r.next()
		if !ok || l.text == "" {
			break
		}
	}

	if !card.Term.IsValid() {
		items = append(items, ItemError{Kind: MissingSide, Side: entities.Term})
	}
	if !card.Definition.IsValid() {
		items = append(items, ItemError{Kind: MissingSide, Side: entities.Definition})
	}
	return card, items
}

// trimFirstSpace drops a single leading whitespace character.
func trimFirstSpace(s string) string {
	if s != "" && s[0] < unicode.MaxASCII && unicode.IsSpace(rune(s[0])) {
		return s[1:]
	}
	return s
}
