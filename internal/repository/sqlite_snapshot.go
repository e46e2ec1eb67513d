package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

type sqliteSnapshot struct {
	conn *sql.DB
}

// NewSQLiteSnapshotRepository - the snapshots table must exist, see sqlite.Storage.Init.
func NewSQLiteSnapshotRepository(conn *sql.DB) SnapshotRepository {
	return &sqliteSnapshot{
		conn: conn,
	}
}

func (that *sqliteSnapshot) Get(ctx context.Context, room string) (*entity.Snapshot, error) {
	query := `SELECT data FROM snapshots WHERE room = ?`

	var data string

	err := that.conn.QueryRowContext(ctx, query, room).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get snapshot: %w", err)
	}

	var snapshot entity.Snapshot
	if err = json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrSnapshotCorrupt, err)
	}

	return &snapshot, nil
}

func (that *sqliteSnapshot) Put(ctx context.Context, room string, snapshot *entity.Snapshot) error {
	query := `INSERT INTO snapshots (room, data) VALUES (?, ?)
		ON CONFLICT(room) DO UPDATE SET data = excluded.data`

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}

	if _, err = that.conn.ExecContext(ctx, query, room, string(data)); err != nil {
		return fmt.Errorf("can't save snapshot: %w", err)
	}

	return nil
}

func (that *sqliteSnapshot) DeleteAll(ctx context.Context, room string) error {
	query := `DELETE FROM snapshots WHERE room = ?`

	if _, err := that.conn.ExecContext(ctx, query, room); err != nil {
		return fmt.Errorf("can't delete snapshot: %w", err)
	}

	return nil
}
