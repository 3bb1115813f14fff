package entities

import (
	"time"

	"github.com/google/uuid"
)

// SessionRecord is the archived summary of one study session.
type SessionRecord struct {
	ID           uuid.UUID  // unique session ID
	SetPath      string     // path of the studied set
	ItemCount    int        // study items created at session start
	Mastered     int        // items that reached the mastered bucket
	MatchesMade  [2]int     // multiple-choice attempts per side
	TextsEntered [2]int     // free-text attempts per side
	Interrupted  bool       // whether the session was aborted with ctrl-c
	StartedAt    time.Time  // timestamp when the session started
	FinishedAt   *time.Time // timestamp when the session ended (nullable)
	Fails        []FailRecord
}

// FailRecord is one card that was answered incorrectly during a session.
type FailRecord struct {
	Side       Side   // side that was being recalled
	Question   string // displayed question text
	Answer     string // displayed answer text
	MatchFails int
	TextFails  int
}

// NewSessionRecord creates a session record that starts now.
func NewSessionRecord(setPath string, itemCount int) *SessionRecord {
	return &SessionRecord{
		ID:        uuid.New(),
		SetPath:   setPath,
		ItemCount: itemCount,
		StartedAt: time.Now(),
	}
}

// Finish marks the record as finished and sets the completion timestamp.
func (r *SessionRecord) Finish(interrupted bool) {
	r.Interrupted = interrupted
	now := time.Now()
	r.FinishedAt = &now
}

// TotalAttempts returns all answers given during the session.
func (r *SessionRecord) TotalAttempts() int {
	return r.MatchesMade[Term] + r.MatchesMade[Definition] + r.TextsEntered[Term] + r.TextsEntered[Definition]
}
