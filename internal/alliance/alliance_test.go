package alliance

import (
	"testing"

	"github.com/talgya/arenasim/internal/tribute"
)

func mk(key string) *tribute.Tribute {
	return tribute.New(key, "T "+key, "unknown", 18, 1)
}

func TestFormAndIsAllied(t *testing.T) {
	m := NewManager()
	a, b, c := mk("a"), mk("b"), mk("c")

	m.Form(a, b)
	if !m.IsAllied(a, b) {
		t.Fatal("a and b should be allied after Form")
	}
	if m.IsAllied(a, c) {
		t.Fatal("a and c should not be allied")
	}
	if !m.IsAllied(a, a) {
		t.Fatal("a tribute is always allied with itself")
	}
}

func TestFormTransitiveMerge(t *testing.T) {
	m := NewManager()
	a, b, c := mk("a"), mk("b"), mk("c")

	m.Form(a, b)
	m.Form(b, c)

	if m.Count() != 1 {
		t.Fatalf("expected 1 merged group, got %d", m.Count())
	}
	if !m.IsAllied(a, c) {
		t.Error("transitive merge should ally a and c")
	}
	members := m.MembersOf(b)
	if len(members) != 3 {
		t.Errorf("merged group has %d members, want 3", len(members))
	}
}

func TestFormRejectsDeadAndSelf(t *testing.T) {
	m := NewManager()
	a, b := mk("a"), mk("b")
	b.Kill("test")

	m.Form(a, b)
	if m.Count() != 0 {
		t.Error("forming with a dead tribute should be a no-op")
	}

	m.Form(a, a)
	if m.Count() != 0 {
		t.Error("self-alliance should be a no-op")
	}
}

func TestBreakupDissolvesWholeGroup(t *testing.T) {
	m := NewManager()
	a, b, c := mk("a"), mk("b"), mk("c")
	m.Form(a, b)
	m.Form(b, c)

	m.Breakup([]string{"a"})
	if m.Count() != 0 {
		t.Fatalf("breakup should dissolve the whole group, %d groups remain", m.Count())
	}
	if m.IsAllied(b, c) {
		t.Error("b and c should no longer be allied after group breakup")
	}
}

func TestBreakupLeavesOtherGroups(t *testing.T) {
	m := NewManager()
	a, b, c, d := mk("a"), mk("b"), mk("c"), mk("d")
	m.Form(a, b)
	m.Form(c, d)

	m.Breakup([]string{"a", "b"})
	if m.Count() != 1 {
		t.Fatalf("expected 1 surviving group, got %d", m.Count())
	}
	if !m.IsAllied(c, d) {
		t.Error("unrelated alliance should survive breakup")
	}
}

func TestRemoveDeadPrunes(t *testing.T) {
	m := NewManager()
	a, b, c := mk("a"), mk("b"), mk("c")
	m.Form(a, b)
	m.Form(b, c)

	c.Kill("test")
	m.RemoveDead([]*tribute.Tribute{a, b, c})
	if !m.IsAllied(a, b) {
		t.Error("a and b should stay allied after c dies")
	}
	if m.MembersOf(c) != nil {
		t.Error("dead tribute should not belong to any group")
	}

	b.Kill("test")
	m.RemoveDead([]*tribute.Tribute{a, b, c})
	if m.Count() != 0 {
		t.Errorf("group of one should be dropped, %d groups remain", m.Count())
	}
}

func TestGroupsDeterministicOrder(t *testing.T) {
	m := NewManager()
	a, b, c, d := mk("a"), mk("b"), mk("c"), mk("d")
	m.Form(d, c)
	m.Form(b, a)

	groups := m.Groups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	// Formation order preserved, keys sorted within each group.
	if groups[0][0] != "c" || groups[0][1] != "d" {
		t.Errorf("first group = %v, want [c d]", groups[0])
	}
	if groups[1][0] != "a" || groups[1][1] != "b" {
		t.Errorf("second group = %v, want [a b]", groups[1])
	}
}
