package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"objbrowser/internal/model"

	"github.com/google/go-cmp/cmp"
)

func testScene() *model.Scene {
	root := "root"
	return &model.Scene{
		Version: model.SceneVersion,
		Name:    "Fixture",
		Nodes: []model.Node{
			{ID: "root", Name: "Root", ActiveSelf: true, Components: []model.Component{
				{Type: "Mover", Fields: map[string]any{"speed": 5.5, "label": "fast", "enabled": true}},
				{Type: "Marker"},
			}},
			{ID: "child", Name: "Child", ParentID: &root, ActiveSelf: false},
			{ID: "other", Name: "Other Root", ActiveSelf: true},
		},
	}
}

func TestStore_RoundTrip(t *testing.T) {
	for _, name := range []string{"scene.json", "scene.yaml", "scene.yml", "scene.sqlite", "nested/dir/scene.db"} {
		t.Run(name, func(t *testing.T) {
			s := Store{Path: filepath.Join(t.TempDir(), name)}
			want := testScene()
			if err := s.Save(context.Background(), want); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := s.Load(context.Background())
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("round trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStore_SaveReplacesPreviousContent(t *testing.T) {
	s := Store{Path: filepath.Join(t.TempDir(), "scene.sqlite")}
	ctx := context.Background()
	if err := s.Save(ctx, testScene()); err != nil {
		t.Fatalf("save: %v", err)
	}
	smaller := testScene()
	smaller.Nodes = smaller.Nodes[2:]
	if err := s.Save(ctx, smaller); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Nodes) != 1 || got.Nodes[0].ID != "other" {
		t.Fatalf("expected only node other, got %+v", got.Nodes)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	for _, name := range []string{"missing.json", "missing.sqlite"} {
		s := Store{Path: filepath.Join(t.TempDir(), name)}
		if _, err := s.Load(context.Background()); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("%s: expected not-exist error, got %v", name, err)
		}
	}
}

func TestStore_DefaultsVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(`{"nodes":[{"id":"a","name":"A","activeSelf":true}]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Store{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Version != model.SceneVersion {
		t.Fatalf("expected version %d, got %d", model.SceneVersion, got.Version)
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.json", FormatJSON},
		{"a.YAML", FormatYAML},
		{"a.yml", FormatYAML},
		{"a.sqlite", FormatSQLite},
		{"a.db", FormatSQLite},
	}
	for _, tt := range tests {
		got, err := FormatFor(tt.path)
		if err != nil || got != tt.want {
			t.Fatalf("FormatFor(%q): expected %q, got %q (err=%v)", tt.path, tt.want, got, err)
		}
	}

	var unk UnknownFormatError
	if _, err := FormatFor("scene.txt"); !errors.As(err, &unk) {
		t.Fatalf("expected UnknownFormatError, got %v", err)
	}
}
