package native

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/coregx/tinyre/syntax"
)

func compile(t *testing.T, pattern string) *Handle {
	t.Helper()
	h, err := Compile(syntax.MustCompile(pattern).Nodes())
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return h
}

func TestSearch(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
		groups  []string
	}{
		{"Hello, World!", "Hello, World!\r\n", true, []string{"Hello, World!"}},
		{"World", "Hello, World", false, nil},
		{"(Hello), (World!)", "Hello, World!", true, []string{"Hello, World!", "Hello", "World!"}},
		{"(a*)(aaa)", "aaaaaaa", true, []string{"aaaaaaa", "aaaa", "aaa"}},
		{"[0-9]*", "42 Hellos", true, []string{"42"}},
		{"^Hello, World!$", "Hello, World!\r\n", false, nil},
	}
	for _, tt := range tests {
		h := compile(t, tt.pattern)
		m, ok := h.Search(tt.input)
		if ok != tt.want {
			t.Errorf("%q on %q: ok = %v, want %v", tt.pattern, tt.input, ok, tt.want)
			continue
		}
		if !ok {
			continue
		}
		var groups []string
		for i := 0; i <= h.NumGroups(); i++ {
			groups = append(groups, m.Group(i))
		}
		if diff := cmp.Diff(tt.groups, groups); diff != "" {
			t.Errorf("%q on %q groups (-want +got):\n%s", tt.pattern, tt.input, diff)
		}
	}
}

func TestGroupOutOfRange(t *testing.T) {
	m, ok := compile(t, "(a)?b").Search("b")
	if !ok {
		t.Fatal("no match")
	}
	for _, i := range []int{-1, 1, 2} {
		if got := m.Group(i); got != "" {
			t.Errorf("Group(%d) = %q, want empty", i, got)
		}
	}
	if got := m.Captures(); len(got) != 0 {
		t.Errorf("Captures() = %q, want none", got)
	}
}

func TestRepeatedGroupKeepsLastIteration(t *testing.T) {
	m, ok := compile(t, "(a)*").Search("aaa")
	if !ok {
		t.Fatal("no match")
	}
	if diff := cmp.Diff([]string{"a"}, m.Captures()); diff != "" {
		t.Errorf("Captures() (-want +got):\n%s", diff)
	}
}

func TestFind(t *testing.T) {
	h := compile(t, "[0-9][0-9]*")
	m, ok := h.Find("age 42, height 180")
	if !ok || m.Text() != "42" || m.Start() != 4 || m.End() != 6 {
		t.Fatalf("Find = %+v, %v", m, ok)
	}

	var got []string
	for _, m := range h.FindAll("age 42, height 180", -1) {
		got = append(got, m.Text())
	}
	if diff := cmp.Diff([]string{"42", "180"}, got); diff != "" {
		t.Errorf("FindAll (-want +got):\n%s", diff)
	}
	if got := h.FindAll("none", -1); len(got) != 0 {
		t.Errorf("FindAll on no digits = %d matches", len(got))
	}
}

func TestAnchorStartWithLeftmost(t *testing.T) {
	h := compile(t, "^a")
	if _, ok := h.Find("ba"); ok {
		t.Error("^a found in \"ba\"")
	}
}

func TestString(t *testing.T) {
	if got := compile(t, "a?$").String(); got != `(?:a)?\z` {
		t.Errorf("String() = %q", got)
	}
}
