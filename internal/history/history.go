// Package history tracks recently served questions so the generator
// can reject duplicates.
package history

import (
	"sync"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/utils"
)

// DefaultCapacity bounds how many normalized questions are remembered.
const DefaultCapacity = 20

// QuestionHistory is a bounded FIFO of normalized question keys shared
// by all requests in the process. The check-then-record step is atomic
// under one lock, so two concurrent requests cannot both accept the
// same question.
type QuestionHistory struct {
	mu       sync.Mutex
	entries  []string
	capacity int
}

func New(capacity int) *QuestionHistory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &QuestionHistory{
		entries:  make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Observe normalizes the question, records it, and reports whether it
// was new. A duplicate of a remembered question returns false and
// leaves the history unchanged. When recording a new entry pushes the
// history past capacity, the oldest entry is evicted.
func (h *QuestionHistory) Observe(question string) bool {
	key := utils.NormalizeQuestion(question)

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, entry := range h.entries {
		if entry == key {
			return false
		}
	}

	h.entries = append(h.entries, key)
	if len(h.entries) > h.capacity {
		h.entries = h.entries[1:]
	}
	return true
}

// Contains reports whether the normalized form of the question is in
// the history, without recording it.
func (h *QuestionHistory) Contains(question string) bool {
	key := utils.NormalizeQuestion(question)

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, entry := range h.entries {
		if entry == key {
			return true
		}
	}
	return false
}

// Len returns the current number of remembered questions.
func (h *QuestionHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Entries returns a copy of the remembered keys, oldest first.
func (h *QuestionHistory) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
