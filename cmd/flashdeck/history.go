package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/flashdeck/flashdeck/internal/domain/entities"
)

func newHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [session-id]",
		Short: "List archived sessions, or show one with its fails",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if len(args) == 1 {
				id, err := uuid.Parse(args[0])
				if err != nil {
					return fmt.Errorf("invalid session id %q: %w", args[0], err)
				}
				rec, err := a.sessions.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				printSession(os.Stdout, rec)
				return nil
			}

			recs, err := a.sessions.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			printHistory(os.Stdout, recs)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of sessions to list")
	return cmd
}

func printHistory(w io.Writer, recs []*entities.SessionRecord) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No sessions archived yet")
		return
	}
	for _, rec := range recs {
		status := color.GreenString("done")
		if rec.Interrupted {
			status = color.RedString("interrupted")
		}
		fmt.Fprintf(w, "%s  %-14s  %3d/%-3d mastered  %4d answers  %s  %s\n",
			rec.ID,
			humanize.Time(rec.StartedAt),
			rec.Mastered,
			rec.ItemCount,
			rec.TotalAttempts(),
			status,
			rec.SetPath,
		)
	}
}

func printSession(w io.Writer, rec *entities.SessionRecord) {
	printHistory(w, []*entities.SessionRecord{rec})
	if rec.FinishedAt != nil {
		fmt.Fprintf(w, "Took %s\n", rec.FinishedAt.Sub(rec.StartedAt).Round(time.Second))
	}
	if len(rec.Fails) == 0 {
		return
	}
	color.New(color.Bold).Fprintln(w, "Fails:")
	for _, f := range rec.Fails {
		fmt.Fprintf(w, "  %s -> %s (%d matching, %d text)\n", f.Question, f.Answer, f.MatchFails, f.TextFails)
	}
}
