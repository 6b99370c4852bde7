package organize

import (
	"fmt"
	"strings"
	"sync"
)

// Summary tallies the outcome of every processed file. It is safe for
// concurrent use by the worker pool; recording is append-only.
type Summary struct {
	mu       sync.Mutex
	scanned  int
	counts   map[Outcome]int
	problems []Decision // collisions and failures, listed in the report
}

// NewSummary returns a Summary for a run over scanned candidate files.
func NewSummary(scanned int) *Summary {
	return &Summary{
		scanned: scanned,
		counts:  make(map[Outcome]int),
	}
}

// Record tallies one decision.
func (s *Summary) Record(d Decision) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[d.Outcome]++
	if d.Outcome == SkippedCollision || d.Outcome == Failed {
		s.problems = append(s.problems, d)
	}
}

// Scanned returns the number of candidate files the run started with.
func (s *Summary) Scanned() int {
	return s.scanned
}

// Count returns the number of files that ended with the given outcome.
func (s *Summary) Count(o Outcome) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[o]
}

// Failures returns how many files ended Failed.
func (s *Summary) Failures() int {
	return s.Count(Failed)
}

// Render produces the human-readable final summary.
func (s *Summary) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Photo Organizing Summary\n")
	fmt.Fprintf(&b, "========================\n")
	fmt.Fprintf(&b, "  - Image files scanned: %d\n", s.scanned)
	for _, o := range []Outcome{Copied, Moved, WouldCopy, WouldMove, SkippedCollision, Failed} {
		if n := s.counts[o]; n > 0 {
			fmt.Fprintf(&b, "  - Files %s: %d\n", o, n)
		}
	}

	if len(s.problems) > 0 {
		fmt.Fprintf(&b, "\nSkips and failures:\n")
		for _, d := range s.problems {
			if d.Outcome == SkippedCollision {
				fmt.Fprintf(&b, "  - %s: destination %s already exists\n", d.Source, d.Dest)
				continue
			}
			fmt.Fprintf(&b, "  - %s: %v\n", d.Source, d.Err)
		}
	}
	return b.String()
}
