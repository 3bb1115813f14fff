// Package terminal is the full-screen study front end built on tcell.
package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/flashdeck/flashdeck/internal/input"
	"github.com/flashdeck/flashdeck/internal/service"
)

// Studier is the session state the event loop feeds.
type Studier interface {
	KeyPressed(k input.Key) service.Flow
	Resize(width, height int)
	Done() bool
}

// Outcome tells how the event loop ended.
type Outcome int

const (
	Completed Outcome = iota
	Interrupted
	Cancelled
)

// Handler routes terminal events to a study session.
type Handler struct {
	screen tcell.Screen
	world  Studier
	logger *zap.Logger
}

func NewHandler(screen tcell.Screen, world Studier, logger *zap.Logger) *Handler {
	return &Handler{
		screen: screen,
		world:  world,
		logger: logger,
	}
}

// Run processes events until every item is mastered, ctrl-c is pressed or ctx
// is done.
func (h *Handler) Run(ctx context.Context) Outcome {
	h.logger.Info("study loop started")
	defer h.logger.Info("study loop stopped")

	if h.world.Done() {
		return Completed
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go h.screen.ChannelEvents(events, quit)

	for {
		select {
		case <-ctx.Done():
			return Cancelled
		case ev, ok := <-events:
			if !ok {
				return Cancelled
			}
			if outcome, done := h.handleEvent(ev); done {
				return outcome
			}
		}
	}
}

func (h *Handler) handleEvent(ev tcell.Event) (Outcome, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, hgt := ev.Size()
		h.logger.Debug("terminal resized", zap.Int("width", w), zap.Int("height", hgt))
		h.world.Resize(w, hgt)

	case *tcell.EventKey:
		k := translateKey(ev)
		if k.Code == input.KeyInterrupt {
			h.logger.Info("interrupted by ctrl-c")
			return Interrupted, true
		}
		if h.world.KeyPressed(k) == service.Finished {
			return Completed, true
		}
	}
	return Completed, false
}
