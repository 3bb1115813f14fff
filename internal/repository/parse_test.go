package repository

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashdeck/flashdeck/internal/domain/entities"
)

const sampleSet = `[recall_t]
matching
text

[recall_d]
text
ignore_accents

T: hola
t: ola
D: hello
D: hi

T:adios
D: goodbye
d: bye
`

func TestParseSet(t *testing.T) {
	set, err := ParseSet(sampleSet)
	require.NoError(t, err)

	assert.Equal(t, entities.RecallSettings{Matching: true, Text: true}, set.RecallT)
	assert.Equal(t, entities.RecallSettings{Text: true, Lenience: entities.Lenience{IgnoreAccents: true}}, set.RecallD)
	require.Len(t, set.Cards, 2)

	first := set.Cards[0]
	assert.Equal(t, []string{"hola"}, first.Term.Displayable())
	assert.Equal(t, []string{"ola"}, first.Term.OtherAccepted())
	assert.Equal(t, []string{"hello", "hi"}, first.Definition.Displayable())
	assert.Empty(t, first.Definition.OtherAccepted())

	second := set.Cards[1]
	assert.Equal(t, []string{"adios"}, second.Term.Displayable())
	assert.Equal(t, []string{"bye"}, second.Definition.OtherAccepted())
}

func TestParseSet_AcceptedBeforeDisplay(t *testing.T) {
	set, err := ParseSet("t: a\nT: b\nD: c\n")
	require.NoError(t, err)
	require.Len(t, set.Cards, 1)

	assert.Equal(t, []string{"b"}, set.Cards[0].Term.Displayable())
	assert.Equal(t, []string{"a"}, set.Cards[0].Term.OtherAccepted())
}

func TestParseSet_Errors(t *testing.T) {
	input := `[recall_t]
matching
sometimes

[bogus]
x
y

T: one
no tag here
X: what

t: only accepted
D: def
`
	_, err := ParseSet(input)
	require.Error(t, err)

	var perr ParseError
	require.True(t, errors.As(err, &perr))
	require.Len(t, perr, 4)

	assert.Equal(t, BadRecallSettings, perr[0].Kind)
	assert.Equal(t, 1, perr[0].Line)
	assert.Equal(t, []ItemError{{Kind: UnknownSetting, Name: "sometimes", Line: 3}}, perr[0].Items)

	assert.Equal(t, UnknownBlock, perr[1].Kind)
	assert.Equal(t, "[bogus]", perr[1].Name)
	assert.Equal(t, 5, perr[1].Line)

	assert.Equal(t, BadFlashcard, perr[2].Kind)
	assert.Equal(t, 9, perr[2].Line)
	assert.Equal(t, []ItemError{
		{Kind: MissingTag, Line: 10},
		{Kind: UnknownTag, Name: "X", Line: 11},
		{Kind: MissingSide, Side: entities.Definition},
	}, perr[2].Items)

	assert.Equal(t, 13, perr[3].Line)
	assert.Equal(t, []ItemError{{Kind: MissingSide, Side: entities.Term}}, perr[3].Items)

	assert.Contains(t, err.Error(), `Unknown block "[bogus]" on line 5`)
	assert.Contains(t, err.Error(), "Missing definition")
}

func TestSetRepository_LoadStudyable(t *testing.T) {
	dir := t.TempDir()
	repo := NewSetRepository()

	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte(sampleSet), 0o600))
	set, err := repo.LoadStudyable(good)
	require.NoError(t, err)
	assert.Len(t, set.Cards, 2)

	unused := filepath.Join(dir, "unused.txt")
	require.NoError(t, os.WriteFile(unused, []byte("T: a\nD: b\n"), 0o600))
	_, err = repo.LoadStudyable(unused)
	assert.ErrorIs(t, err, ErrEmptySet)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("[recall_t]\nmatching\n"), 0o600))
	_, err = repo.LoadStudyable(empty)
	assert.ErrorIs(t, err, ErrEmptySet)

	_, err = repo.Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
