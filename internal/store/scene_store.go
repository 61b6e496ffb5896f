// Package store loads and saves scene files. The file extension picks the
// encoding: .json, .yaml/.yml, or .sqlite/.db.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"objbrowser/internal/model"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

type UnknownFormatError struct {
	Path string
}

func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown scene format for %s (want .json, .yaml, .yml, .sqlite or .db)", e.Path)
}

// FormatFor picks the encoding from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(path))) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".sqlite", ".db":
		return FormatSQLite, nil
	default:
		return "", UnknownFormatError{Path: path}
	}
}

type Store struct {
	Path string
}

func (s Store) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

func (s Store) Load(ctx context.Context) (*model.Scene, error) {
	f, err := FormatFor(s.Path)
	if err != nil {
		return nil, err
	}
	var sc *model.Scene
	switch f {
	case FormatSQLite:
		if !s.Exists() {
			return nil, fmt.Errorf("load scene %s: %w", s.Path, os.ErrNotExist)
		}
		sc, err = s.loadSQLite(ctx)
	default:
		sc, err = s.loadFile(f)
	}
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", s.Path, err)
	}
	if sc.Version == 0 {
		sc.Version = model.SceneVersion
	}
	if sc.Nodes == nil {
		sc.Nodes = []model.Node{}
	}
	return sc, nil
}

func (s Store) Save(ctx context.Context, sc *model.Scene) error {
	if sc == nil {
		return errors.New("save scene: nil scene")
	}
	f, err := FormatFor(s.Path)
	if err != nil {
		return err
	}
	if sc.Version == 0 {
		sc.Version = model.SceneVersion
	}
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	switch f {
	case FormatSQLite:
		err = s.saveSQLite(ctx, sc)
	default:
		err = s.saveFile(f, sc)
	}
	if err != nil {
		return fmt.Errorf("save scene %s: %w", s.Path, err)
	}
	return nil
}

func (s Store) loadFile(f Format) (*model.Scene, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	var sc model.Scene
	if f == FormatYAML {
		err = yaml.Unmarshal(b, &sc)
	} else {
		err = json.Unmarshal(b, &sc)
	}
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s Store) saveFile(f Format, sc *model.Scene) error {
	var (
		b   []byte
		err error
	)
	if f == FormatYAML {
		b, err = yaml.Marshal(sc)
	} else {
		b, err = json.MarshalIndent(sc, "", "  ")
		b = append(b, '\n')
	}
	if err != nil {
		return err
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path)
}
