package prompt

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildStructure(t *testing.T) {
	msgs := Build("we shipped the thing")

	if len(msgs) != 6 {
		t.Fatalf("message count: got %d, want 6", len(msgs))
	}
	if msgs[0].Role != RoleSystem {
		t.Errorf("first role: got %q, want %q", msgs[0].Role, RoleSystem)
	}

	wantRoles := []string{RoleUser, RoleAssistant, RoleUser, RoleAssistant}
	for i, want := range wantRoles {
		if got := msgs[i+1].Role; got != want {
			t.Errorf("few-shot turn %d role: got %q, want %q", i, got, want)
		}
	}

	last := msgs[len(msgs)-1]
	if last.Role != RoleUser {
		t.Errorf("last role: got %q, want %q", last.Role, RoleUser)
	}
	if last.Content != "we shipped the thing" {
		t.Errorf("last content: got %q, want %q", last.Content, "we shipped the thing")
	}
}

func TestBuildDeterministic(t *testing.T) {
	a := Build("hello")
	b := Build("hello")
	if !reflect.DeepEqual(a, b) {
		t.Error("Build returned different sequences for the same input")
	}
}

func TestBuildDoesNotAliasFewShot(t *testing.T) {
	msgs := Build("first")
	msgs[1].Content = "mutated"

	again := Build("second")
	if again[1].Content == "mutated" {
		t.Error("mutating a built sequence leaked into later builds")
	}
}

func TestSystemRules(t *testing.T) {
	sys := System()

	for _, want := range []string{"2 to 5 sentences", "1 or 2 relevant emojis", "Do not use bold markdown", "2-3 relevant, professional hashtags"} {
		if !strings.Contains(sys, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
	if sys != strings.TrimSpace(sys) {
		t.Error("system prompt has surrounding whitespace")
	}
}
