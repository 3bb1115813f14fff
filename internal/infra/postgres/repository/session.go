package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/flashdeck/flashdeck/internal/domain/entities"
	"github.com/flashdeck/flashdeck/internal/infra/postgres"
)

var ErrSessionNotFound = errors.New("study session not found")

// SessionRepository provides access to archived study sessions.
type SessionRepository struct {
	db         postgres.DBTX
	transactor *postgres.Transactor
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db postgres.DBTX, transactor *postgres.Transactor) *SessionRepository {
	return &SessionRepository{db: db, transactor: transactor}
}

// Save inserts the session and its fails within one transaction.
func (r *SessionRepository) Save(ctx context.Context, rec *entities.SessionRecord) error {
	return r.transactor.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO study_sessions (
				id, set_path, item_count, mastered,
				matches_term, matches_def, texts_term, texts_def,
				interrupted, started_at, finished_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`

		_, err := tx.Exec(
			ctx, query,
			rec.ID,
			rec.SetPath,
			rec.ItemCount,
			rec.Mastered,
			rec.MatchesMade[entities.Term],
			rec.MatchesMade[entities.Definition],
			rec.TextsEntered[entities.Term],
			rec.TextsEntered[entities.Definition],
			rec.Interrupted,
			rec.StartedAt,
			rec.FinishedAt,
		)
		if err != nil {
			return fmt.Errorf("insert session: %w", err)
		}

		if len(rec.Fails) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for i, f := range rec.Fails {
			batch.Queue(`
				INSERT INTO session_fails (
					session_id, position, side, question, answer, match_fails, text_fails
				) VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, rec.ID, i, int16(f.Side), f.Question, f.Answer, f.MatchFails, f.TextFails)
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert session fails: %w", err)
		}

		return nil
	})
}

const sessionColumns = `
	id, set_path, item_count, mastered,
	matches_term, matches_def, texts_term, texts_def,
	interrupted, started_at, finished_at
`

func scanSession(row pgx.Row) (*entities.SessionRecord, error) {
	var rec entities.SessionRecord
	err := row.Scan(
		&rec.ID,
		&rec.SetPath,
		&rec.ItemCount,
		&rec.Mastered,
		&rec.MatchesMade[entities.Term],
		&rec.MatchesMade[entities.Definition],
		&rec.TextsEntered[entities.Term],
		&rec.TextsEntered[entities.Definition],
		&rec.Interrupted,
		&rec.StartedAt,
		&rec.FinishedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListRecent returns the most recently started sessions without their fails.
func (r *SessionRepository) ListRecent(ctx context.Context, limit int) ([]*entities.SessionRecord, error) {
	query := `SELECT` + sessionColumns + `
		FROM study_sessions
		ORDER BY started_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []*entities.SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return out, nil
}

// GetByID retrieves a session and its fails.
// Returns ErrSessionNotFound if the session doesn't exist.
func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.SessionRecord, error) {
	query := `SELECT` + sessionColumns + `
		FROM study_sessions
		WHERE id = $1
	`

	rec, err := scanSession(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT side, question, answer, match_fails, text_fails
		FROM session_fails
		WHERE session_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("get session fails: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f entities.FailRecord
		var side int16
		if err := rows.Scan(&side, &f.Question, &f.Answer, &f.MatchFails, &f.TextFails); err != nil {
			return nil, fmt.Errorf("scan session fail: %w", err)
		}
		f.Side = entities.Side(side)
		rec.Fails = append(rec.Fails, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rec, nil
}
