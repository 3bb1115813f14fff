package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flashdeck/flashdeck/internal/delivery/terminal"
	"github.com/flashdeck/flashdeck/internal/domain/entities"
	"github.com/flashdeck/flashdeck/internal/repository"
	"github.com/flashdeck/flashdeck/internal/service"
)

const archiveTimeout = 5 * time.Second

func newLearnCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "learn <set>",
		Short: "Study a set until every card is mastered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			return a.learn(cmd.Context(), args[0])
		},
	}
}

func (a *app) learn(ctx context.Context, path string) error {
	set, err := repository.NewSetRepository().LoadStudyable(path)
	if err != nil {
		return err
	}

	cards := service.NewCardList(
		set,
		service.StudyConfig{
			ResampleAttempts:   a.cfg.Study.ResampleAttempts,
			DistractorAttempts: a.cfg.Study.DistractorAttempts,
		},
		rand.New(rand.NewSource(time.Now().UnixNano())),
		a.log,
	)
	record := entities.NewSessionRecord(path, cards.Total())

	a.log.Info("session started",
		zap.String("session_id", record.ID.String()),
		zap.String("set", path),
		zap.Int("items", cards.Total()),
	)

	res, outcome, err := a.study(ctx, cards)
	if err != nil {
		return err
	}

	terminal.PrintReport(os.Stdout, res.report, outcome == terminal.Interrupted)

	res.report.Record(record, res.footer)
	record.Finish(outcome != terminal.Completed)

	a.log.Info("session finished",
		zap.String("session_id", record.ID.String()),
		zap.Int("mastered", record.Mastered),
		zap.Int("attempts", record.TotalAttempts()),
		zap.Bool("interrupted", record.Interrupted),
	)

	archiveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), archiveTimeout)
	defer cancel()
	return a.sessions.Archive(archiveCtx, record)
}

type studyResult struct {
	report *service.Report
	footer service.FooterCounts
}

// study runs the full-screen session. The terminal is restored before it returns.
func (a *app) study(ctx context.Context, cards *service.CardList) (studyResult, terminal.Outcome, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return studyResult{}, 0, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return studyResult{}, 0, fmt.Errorf("init terminal: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
	}()

	width, height := screen.Size()
	view := terminal.NewScreen(screen, a.cfg.UI.MinWidth, a.cfg.UI.MinHeight)
	world := service.NewWorld(cards, view, service.NewAnswerValidator(a.cfg.Matcher.Similarity), a.log, width, height)

	outcome := terminal.NewHandler(screen, world, a.log).Run(ctx)
	screen.Fini()

	return studyResult{report: world.Report(), footer: world.Footer().Counts()}, outcome, nil
}
