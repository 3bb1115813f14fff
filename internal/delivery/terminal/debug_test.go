package terminal

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/flashdeck/flashdeck/internal/domain/entities"
)

func TestPrintSet(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	hola := entities.Flashcard{Term: entities.NewText("hola"), Definition: entities.NewText("hello")}
	hola.Definition.PushAccepted("hi")
	set := &entities.Set{
		RecallD: entities.RecallSettings{Matching: true, Lenience: entities.Lenience{Fuzzy: true}},
		Cards:   []entities.Flashcard{hola},
	}

	var buf bytes.Buffer
	PrintSet(&buf, set)
	out := buf.String()

	assert.Contains(t, out, "  term:      none\n")
	assert.Contains(t, out, "  definition: matching, fuzzy\n")
	assert.Contains(t, out, "Cards (1):\n")
	assert.Contains(t, out, "    term:      hola\n")
	assert.Contains(t, out, "    definition: hello  (also: hi)\n")
}

func TestSideLabel_UsesSideColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	assert.Equal(t, color.New(color.FgBlue).Sprintf("%-10s", "term:"), sideLabel(entities.Term))
	assert.Equal(t, color.New(color.FgGreen).Sprintf("%-10s", "definition:"), sideLabel(entities.Definition))
	assert.NotEqual(t, sideLabel(entities.Term), color.New(color.FgGreen).Sprintf("%-10s", "term:"))
}
