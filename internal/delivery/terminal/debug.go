package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/flashdeck/flashdeck/internal/domain/entities"
)

var sideColors = map[entities.Color]color.Attribute{
	entities.ColorBlue:  color.FgBlue,
	entities.ColorGreen: color.FgGreen,
}

// sideLabel returns the padded side name colored with the side's color.
func sideLabel(side entities.Side) string {
	return color.New(sideColors[side.Color()]).Sprintf("%-10s", side.String()+":")
}

// PrintSet dumps a parsed set for inspection.
func PrintSet(w io.Writer, set *entities.Set) {
	bold := color.New(color.Bold)

	bold.Fprintln(w, "Recall:")
	for _, side := range entities.Sides {
		fmt.Fprintf(w, "  %s %s\n", sideLabel(side), recallString(set.RecallSettings(side)))
	}

	fmt.Fprintln(w)
	bold.Fprintf(w, "Cards (%d):\n", len(set.Cards))
	for i, card := range set.Cards {
		fmt.Fprintf(w, "  %d.\n", i+1)
		for _, side := range entities.Sides {
			text := card.Side(side)
			fmt.Fprintf(w, "    %s %s", sideLabel(side), strings.Join(text.Displayable(), " | "))
			if other := text.OtherAccepted(); len(other) > 0 {
				fmt.Fprintf(w, "  (also: %s)", strings.Join(other, " | "))
			}
			fmt.Fprintln(w)
		}
	}
}

func recallString(rs entities.RecallSettings) string {
	var parts []string
	if rs.Matching {
		parts = append(parts, "matching")
	}
	if rs.Text {
		parts = append(parts, "text")
	}
	if rs.Lenience.IgnoreAccents {
		parts = append(parts, "ignore_accents")
	}
	if rs.Lenience.IgnorePunctuation {
		parts = append(parts, "ignore_punctuation")
	}
	if rs.Lenience.Fuzzy {
		parts = append(parts, "fuzzy")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
