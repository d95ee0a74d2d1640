package view

import (
	"sort"
	"strings"
	"testing"
)

func TestResolveSkillIconKnownKey(t *testing.T) {
	svg, ok := ResolveSkillIcon("go")
	if !ok {
		t.Fatal("expected go icon to resolve")
	}
	if !strings.Contains(svg, "<svg") {
		t.Fatalf("expected svg markup, got %q", svg)
	}
}

func TestResolveSkillIconUnknownKey(t *testing.T) {
	svg, ok := ResolveSkillIcon("definitely-not-an-icon")
	if ok {
		t.Fatal("expected unknown key to miss")
	}
	if svg != "" {
		t.Fatalf("expected empty svg on miss, got %q", svg)
	}
}

func TestResolveSkillIconIsCaseSensitive(t *testing.T) {
	if _, ok := ResolveSkillIcon("Go"); ok {
		t.Fatal("expected exact-match lookup, uppercase key should miss")
	}
}

func TestSkillIconNamesSorted(t *testing.T) {
	names := SkillIconNames()
	if len(names) == 0 {
		t.Fatal("expected non-empty icon list")
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("expected sorted names, got %v", names)
	}

	// every listed key must resolve
	for _, name := range names {
		if _, ok := ResolveSkillIcon(name); !ok {
			t.Fatalf("listed name %q does not resolve", name)
		}
	}
}

func TestSkillIconNamesStable(t *testing.T) {
	first := SkillIconNames()
	second := SkillIconNames()
	if len(first) != len(second) {
		t.Fatalf("expected stable length, got %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical output, mismatch at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestDefaultSkillIconSVG(t *testing.T) {
	svg := DefaultSkillIconSVG()
	if !strings.Contains(svg, "<svg") {
		t.Fatalf("expected svg markup, got %q", svg)
	}
}

func TestSkillIconOptionsMatchNames(t *testing.T) {
	options := SkillIconOptions()
	names := SkillIconNames()
	if len(options) != len(names) {
		t.Fatalf("expected %d options, got %d", len(names), len(options))
	}
	for i, option := range options {
		if option.Key != names[i] {
			t.Fatalf("option %d: expected key %q, got %q", i, names[i], option.Key)
		}
		if option.Label == "" {
			t.Fatalf("option %q has empty label", option.Key)
		}
	}
}
