package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/flashdeck/flashdeck/internal/domain/entities"
)

func TestPrintHistory(t *testing.T) {
	color.NoColor = true

	rec := entities.NewSessionRecord("sets/spanish.txt", 4)
	rec.StartedAt = time.Now().Add(-3 * time.Hour)
	rec.Mastered = 4
	rec.MatchesMade = [2]int{2, 3}
	rec.Finish(false)

	var buf bytes.Buffer
	printHistory(&buf, []*entities.SessionRecord{rec})
	out := buf.String()

	assert.Contains(t, out, rec.ID.String())
	assert.Contains(t, out, "3 hours ago")
	assert.Contains(t, out, "4/4")
	assert.Contains(t, out, "5 answers")
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "sets/spanish.txt")
}

func TestPrintHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, nil)
	assert.Equal(t, "No sessions archived yet\n", buf.String())
}

func TestPrintSession(t *testing.T) {
	color.NoColor = true

	rec := entities.NewSessionRecord("sets/spanish.txt", 2)
	rec.Fails = []entities.FailRecord{{Side: entities.Definition, Question: "hola", Answer: "hello", MatchFails: 1, TextFails: 2}}
	rec.Finish(true)

	var buf bytes.Buffer
	printSession(&buf, rec)
	out := buf.String()

	assert.Contains(t, out, "interrupted")
	assert.Contains(t, out, "Took ")
	assert.Contains(t, out, "  hola -> hello (1 matching, 2 text)\n")
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	for _, name := range []string{"learn", "debug", "history"} {
		cmd, _, err := root.Find([]string{name})
		assert.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
