package finbot

import (
	"testing"
)

func TestParseKnowledge(t *testing.T) {
	kb, err := ParseKnowledge(knowledge)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"what is p/e ratio", "market psychology", "asset allocation", "cybersecurity tips", "budgeting"}
	got := kb.Topics()
	if len(got) != len(want) {
		t.Fatalf("Topics() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Topics()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	for _, e := range kb.Entries() {
		if e.Response == "" || e.FollowUp == "" {
			t.Errorf("entry %q is incomplete: %+v", e.Topic, e)
		}
	}
	if _, ok := kb.Lookup("Budgeting"); !ok {
		t.Errorf("Lookup() is case sensitive")
	}
}

func TestParseKnowledge_Document(t *testing.T) {
	src := `# Title

Ignored intro.

## Saving

First line
continues here.

Second paragraph.

> Next?

### not a topic

## Loans

Borrow less.
`
	kb, err := ParseKnowledge([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	saving, ok := kb.Lookup("saving")
	if !ok {
		t.Fatalf("topic saving is missing: %q", kb.Topics())
	}
	if want := "First line continues here.\n\nSecond paragraph."; saving.Response != want {
		t.Errorf("Response = %q, want %q", saving.Response, want)
	}
	if saving.FollowUp != "Next?" {
		t.Errorf("FollowUp = %q, want %q", saving.FollowUp, "Next?")
	}
	loans, _ := kb.Lookup("loans")
	if loans.FollowUp != "" {
		t.Errorf("FollowUp = %q, want none", loans.FollowUp)
	}
	if len(kb.Entries()) != 2 {
		t.Errorf("got %d entries, want 2", len(kb.Entries()))
	}
}

func TestParseKnowledge_Errors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"no topic", "# Title\n\nSome text.\n"},
		{"duplicate", "## a\n\nx\n\n## A\n\ny\n"},
		{"no response", "## a\n\n> follow\n"},
		{"two follow-ups", "## a\n\nx\n\n> one\n\n> two\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseKnowledge([]byte(tc.src)); err == nil {
				t.Errorf("ParseKnowledge() accepted %q", tc.src)
			}
		})
	}
}
