package db

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/DrJuChunKoO/transpal-engine/internal/errors"
	"github.com/DrJuChunKoO/transpal-engine/internal/store"
)

// SaveState persists the full history stack as the single session row.
// The engine is single-document and single-user, so there is exactly one
// session; saving overwrites it.
func SaveState(database *sql.DB, st store.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return errors.NewInternal(err)
	}

	query := `
		INSERT INTO session (id, state_json, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			state_json = excluded.state_json,
			updated_at = excluded.updated_at
	`
	if _, err := database.Exec(query, string(data), time.Now().Unix()); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// LoadState restores the persisted history stack. The second return value is
// false when no session has ever been saved.
func LoadState(database *sql.DB) (store.State, bool, error) {
	var data string
	err := database.QueryRow(`SELECT state_json FROM session WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return store.State{}, false, nil
	}
	if err != nil {
		return store.State{}, false, errors.NewInternal(err)
	}

	var st store.State
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return store.State{}, false, errors.NewInternal(err)
	}
	return st, true, nil
}

// ClearState removes the persisted session row.
func ClearState(database *sql.DB) error {
	if _, err := database.Exec(`DELETE FROM session WHERE id = 1`); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}
