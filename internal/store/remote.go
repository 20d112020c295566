// internal/store/remote.go
//
// Remote document backend (MySQL via sqlx).
//
// Context
// -------
// The remote store is one row: portfolio_data(id, data, updated_at) with id
// pinned to recordID.  The document travels as a JSON blob; the database
// never sees individual collections, which keeps the whole-document
// replace-on-write semantics identical to the file backend.
//
// Schema:
//
//	CREATE TABLE portfolio_data (
//	    id          TINYINT UNSIGNED PRIMARY KEY,
//	    data        JSON         NOT NULL,
//	    updated_at  TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
//	                             ON UPDATE CURRENT_TIMESTAMP
//	);

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/skjuv/portfolio/internal/portfolio"
)

// recordID is the well-known primary key of the single portfolio row.
const recordID = 1

// RemoteBackend persists the record in a MySQL row.
type RemoteBackend struct {
	db *sqlx.DB
}

// NewRemoteBackend wraps an open connection pool.
func NewRemoteBackend(db *sqlx.DB) *RemoteBackend {
	return &RemoteBackend{db: db}
}

// Load fetches and decodes the document row.  An existing table with no row
// yields ErrNotFound so the orchestrator can seed it.
func (r *RemoteBackend) Load(ctx context.Context) (*portfolio.Data, error) {
	const q = `SELECT data FROM portfolio_data WHERE id = ? LIMIT 1`

	var raw []byte
	if err := r.db.GetContext(ctx, &raw, q, recordID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var data portfolio.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Save upserts the document row in a single statement.
func (r *RemoteBackend) Save(ctx context.Context, data *portfolio.Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	const q = `INSERT INTO portfolio_data (id, data) VALUES (?, ?)
	           ON DUPLICATE KEY UPDATE data = VALUES(data)`
	_, err = r.db.ExecContext(ctx, q, recordID, raw)
	return err
}
