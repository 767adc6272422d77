package history

import (
	"fmt"
	"testing"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/utils"
)

func TestObserveRejectsDuplicates(t *testing.T) {
	h := New(DefaultCapacity)

	if !h.Observe("What is 2 + 2?") {
		t.Fatal("expected first observation to be accepted")
	}
	if h.Observe("what is 2 2") {
		t.Fatal("expected punctuation/case variant to be rejected")
	}
	if h.Observe("2 + 2 is what?") {
		t.Fatal("expected word-order variant to be rejected")
	}
	if h.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", h.Len())
	}
}

func TestFIFOEviction(t *testing.T) {
	h := New(DefaultCapacity)

	for i := 0; i < 25; i++ {
		if !h.Observe(fmt.Sprintf("question number %d plus seven", i)) {
			t.Fatalf("expected distinct question %d to be accepted", i)
		}
	}

	if h.Len() != DefaultCapacity {
		t.Fatalf("expected history capped at %d, got %d", DefaultCapacity, h.Len())
	}

	entries := h.Entries()
	// oldest five evicted, entries 5..24 remain oldest-first
	want := utils.NormalizeQuestion("question number 5 plus seven")
	if entries[0] != want {
		t.Fatalf("expected oldest surviving entry %q, got %q", want, entries[0])
	}
	wantNewest := utils.NormalizeQuestion("question number 24 plus seven")
	if entries[len(entries)-1] != wantNewest {
		t.Fatalf("expected newest entry %q, got %q", wantNewest, entries[len(entries)-1])
	}

	if h.Contains("question number 4 plus seven") {
		t.Fatal("expected evicted entry to be forgotten")
	}
	if !h.Contains("question number 5 plus seven") {
		t.Fatal("expected surviving entry to be remembered")
	}
}

func TestNewClampsCapacity(t *testing.T) {
	h := New(0)
	for i := 0; i < DefaultCapacity+5; i++ {
		h.Observe(fmt.Sprintf("unique question %d", i))
	}
	if h.Len() != DefaultCapacity {
		t.Fatalf("expected default capacity %d, got %d", DefaultCapacity, h.Len())
	}
}
