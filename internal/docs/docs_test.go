package docs

import (
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	got := strings.Join(Topics(), ",")
	if got != "keys,rows,scene" {
		t.Fatalf("unexpected topics %q", got)
	}
}

func TestGet(t *testing.T) {
	body, ok := Get(" KEYS ")
	if !ok || !strings.Contains(body, "Toggle active") {
		t.Fatalf("expected keys topic, got ok=%v", ok)
	}
	if _, ok := Get("missing"); ok {
		t.Fatalf("expected missing topic to be absent")
	}
	if _, ok := Get(""); ok {
		t.Fatalf("expected blank topic to be absent")
	}
}
