package terminal

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/flashdeck/flashdeck/internal/service"
)

const msgInterrupted = "Exited with ctrl-c"

// failColors is indexed by fail count minus one. Higher counts use cyan.
var failColors = []color.Attribute{
	color.FgHiBlack,
	color.FgYellow,
	color.FgRed,
	color.FgMagenta,
	color.FgBlue,
}

func failColor(count int) *color.Color {
	if count >= 1 && count <= len(failColors) {
		return color.New(failColors[count-1])
	}
	return color.New(color.FgCyan)
}

// PrintReport writes the statistics table and the failed card list.
func PrintReport(w io.Writer, r *service.Report, interrupted bool) {
	bold := color.New(color.Bold)

	if interrupted {
		color.New(color.FgRed).Fprintln(w, msgInterrupted)
	}
	bold.Fprintln(w, "Stats:")
	fmt.Fprintln(w, "                |  total   |   term   |definition|")

	printSection(w, "Matches made:", "Match fails:", r.Matches)
	printSection(w, "Texts entered:", "Text fails:", r.Texts)
	if r.Matches.IsUsed() && r.Texts.IsUsed() {
		printSection(w, "Total answered:", "Total fails:", r.Total())
	}

	if len(r.Failed) == 0 {
		return
	}
	fmt.Fprintln(w)
	bold.Fprintln(w, "Fails:")
	for _, f := range r.Failed {
		failColor(f.Fails.Value()).Fprintf(w, "  %s (%s)\n", f.Question, f.Fails)
	}
}

func printSection(w io.Writer, madeTag, failsTag string, s service.StatsSection) {
	if !s.IsUsed() {
		return
	}
	printRow(w, madeTag, fmt.Sprint(s.Made.Total()), fmt.Sprint(s.Made.Term), fmt.Sprint(s.Made.Definition))
	printRow(w, failsTag, fmt.Sprint(s.Fails.Total()), fmt.Sprint(s.Fails.Term), fmt.Sprint(s.Fails.Definition))
	printRow(w, "",
		proportion(s.Made.Total(), s.Fails.Total()),
		proportion(s.Made.Term, s.Fails.Term),
		proportion(s.Made.Definition, s.Fails.Definition),
	)
}

func printRow(w io.Writer, tag, total, term, definition string) {
	fmt.Fprintf(w, "%-15s |%s|%s|%s|\n", tag, center(total, 10), center(term, 10), center(definition, 10))
}

// proportion formats part of total as a whole percentage, or NaN for an empty total.
func proportion(total, part int) string {
	if total == 0 {
		return "NaN"
	}
	return fmt.Sprintf("%.0f%%", float64(part)/float64(total)*100)
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return fmt.Sprintf("%*s%s%*s", left, "", s, pad-left, "")
}
