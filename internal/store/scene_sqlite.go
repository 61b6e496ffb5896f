package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"

	"objbrowser/internal/model"

	_ "modernc.org/sqlite"
)

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateSceneSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateSceneSQLite(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scene_meta (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS nodes (
			seq INTEGER PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			parent_id TEXT NOT NULL,
			active_self INTEGER NOT NULL,
			components_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_nodes_parent ON nodes(parent_id);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

func (s Store) loadSQLite(ctx context.Context) (*model.Scene, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	sc := &model.Scene{Version: model.SceneVersion}
	readMeta := func(k string) string {
		var v string
		_ = db.QueryRowContext(ctx, `SELECT v FROM scene_meta WHERE k = ?`, k).Scan(&v)
		return strings.TrimSpace(v)
	}
	if v := readMeta("version"); v != "" {
		// best-effort parse
		if n, err := strconv.Atoi(v); err == nil {
			sc.Version = n
		}
	}
	sc.Name = readMeta("name")

	rows, err := db.QueryContext(ctx, `SELECT id, name, parent_id, active_self, components_json FROM nodes ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			n        model.Node
			parentID string
			active   int
			compsJS  string
		)
		if err := rows.Scan(&n.ID, &n.Name, &parentID, &active, &compsJS); err != nil {
			return nil, err
		}
		if parentID != "" {
			n.ParentID = &parentID
		}
		n.ActiveSelf = active != 0
		if compsJS != "" && compsJS != "null" {
			if err := json.Unmarshal([]byte(compsJS), &n.Components); err != nil {
				return nil, err
			}
		}
		sc.Nodes = append(sc.Nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s Store) saveSQLite(ctx context.Context, sc *model.Scene) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO scene_meta(k, v) VALUES(?, ?)`, "version", strconv.Itoa(sc.Version)); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO scene_meta(k, v) VALUES(?, ?)`, "name", strings.TrimSpace(sc.Name)); err != nil {
		return err
	}

	// Replace-all: scenes are small and always saved whole.
	if _, err := tx.ExecContext(ctx, `DELETE FROM nodes`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO nodes(seq, id, name, parent_id, active_self, components_json) VALUES(?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, n := range sc.Nodes {
		parentID := ""
		if n.ParentID != nil {
			parentID = strings.TrimSpace(*n.ParentID)
		}
		comps, err := json.Marshal(n.Components)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, i, n.ID, n.Name, parentID, boolToInt(n.ActiveSelf), string(comps)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
