package postgres

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS study_sessions (
	id               UUID PRIMARY KEY,
	set_path         TEXT        NOT NULL,
	item_count       INTEGER     NOT NULL,
	mastered         INTEGER     NOT NULL DEFAULT 0,
	matches_term     INTEGER     NOT NULL DEFAULT 0,
	matches_def      INTEGER     NOT NULL DEFAULT 0,
	texts_term       INTEGER     NOT NULL DEFAULT 0,
	texts_def        INTEGER     NOT NULL DEFAULT 0,
	interrupted      BOOLEAN     NOT NULL DEFAULT FALSE,
	started_at       TIMESTAMPTZ NOT NULL,
	finished_at      TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS session_fails (
	session_id  UUID     NOT NULL REFERENCES study_sessions (id) ON DELETE CASCADE,
	position    INTEGER  NOT NULL,
	side        SMALLINT NOT NULL,
	question    TEXT     NOT NULL,
	answer      TEXT     NOT NULL,
	match_fails INTEGER  NOT NULL,
	text_fails  INTEGER  NOT NULL,
	PRIMARY KEY (session_id, position)
);

CREATE INDEX IF NOT EXISTS study_sessions_started_at_idx ON study_sessions (started_at DESC);
`

// EnsureSchema creates the archive tables if they do not exist.
func EnsureSchema(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
