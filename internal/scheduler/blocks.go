package scheduler

import (
	"fmt"
	"sort"

	"park-itinerary-service/internal/domain"
)

// A contiguous open interval of the day not yet consumed by anchors or
// scheduled items. Half-open: [start, end).
type timeBlock struct {
	id    int
	start int
	end   int
}

func (b timeBlock) size() int { return b.end - b.start }

// A candidate placement inside one block. start is the earliest minute the
// caller may occupy; limit is the end of the enclosing block.
type gap struct {
	blockID int
	start   int
	limit   int
}

// blockSet maintains the open time blocks between immovable anchors for one
// day. Blocks shrink and split as intervals are reserved; blocks below the
// minimum schedulable size are dropped from future search. The id counter is
// per-instance so nothing leaks across invocations.
type blockSet struct {
	blocks  []timeBlock
	minSize int
	stride  int
	nextID  int
}

// newBlockSet creates the initial block set covering [open, close).
// Callers pass the close time already reduced by the venue buffer.
func newBlockSet(openMin, closeMin, minSize, stride int) *blockSet {
	s := &blockSet{minSize: minSize, stride: stride, nextID: 1}
	if closeMin-openMin >= minSize {
		s.blocks = []timeBlock{{id: s.nextID, start: openMin, end: closeMin}}
		s.nextID++
	}
	return s
}

// carve removes an anchor's blocked interval from the open blocks. Runs
// before any item placement, so anchors always win the space they cover.
func (s *blockSet) carve(a domain.Anchor) {
	s.remove(a.BlockedStart(), a.BlockedEnd())
}

// reserve consumes [start, end) from the enclosing open block, splitting or
// shrinking it. Fails with ErrNoCapacity when the interval is not fully
// contained in a single open block.
func (s *blockSet) reserve(start, end int) error {
	if end <= start {
		return fmt.Errorf("reserve %s-%s: %w", FormatClock(start), FormatClock(end), ErrNoCapacity)
	}

	for _, b := range s.blocks {
		if start >= b.start && end <= b.end {
			s.remove(start, end)
			return nil
		}
	}

	return fmt.Errorf("reserve %s-%s: %w", FormatClock(start), FormatClock(end), ErrNoCapacity)
}

// remove subtracts [start, end) from every overlapping block, dropping any
// remnant below the minimum schedulable size.
func (s *blockSet) remove(start, end int) {
	if end <= start {
		return
	}

	next := make([]timeBlock, 0, len(s.blocks)+1)
	for _, b := range s.blocks {
		if !overlaps(b.start, b.end, start, end) {
			next = append(next, b)
			continue
		}

		if left := (timeBlock{id: b.id, start: b.start, end: start}); left.size() >= s.minSize && left.start < left.end {
			next = append(next, left)
		}
		if start < b.end && end < b.end {
			right := timeBlock{id: s.nextID, start: end, end: b.end}
			s.nextID++
			if right.size() >= s.minSize {
				next = append(next, right)
			}
		}
	}

	sort.Slice(next, func(i, j int) bool { return next[i].start < next[j].start })
	s.blocks = next
}

// fits reports whether [start, end) lies entirely inside one open block.
func (s *blockSet) fits(start, end int) bool {
	for _, b := range s.blocks {
		if start >= b.start && end <= b.end {
			return true
		}
	}
	return false
}

// findGaps enumerates candidate gaps of at least minSize minutes inside one
// block, ordered by start time. The sequence is finite and is invalidated by
// any mutation of the set.
func (s *blockSet) findGaps(b timeBlock, minSize int) []gap {
	if b.size() < minSize {
		return nil
	}

	gaps := make([]gap, 0, b.size()/s.stride+1)
	for start := b.start; start+minSize <= b.end; start += s.stride {
		gaps = append(gaps, gap{blockID: b.id, start: start, limit: b.end})
	}
	return gaps
}

// candidateGaps enumerates gaps of at least minSize across all remaining
// blocks, ordered by start time.
func (s *blockSet) candidateGaps(minSize int) []gap {
	var gaps []gap
	for _, b := range s.blocks {
		gaps = append(gaps, s.findGaps(b, minSize)...)
	}
	return gaps
}

// earliestFitAfter returns the earliest start >= minute that can hold
// duration minutes inside one open block.
func (s *blockSet) earliestFitAfter(minute, duration int) (int, bool) {
	for _, b := range s.blocks {
		start := b.start
		if start < minute {
			start = minute
		}
		if start+duration <= b.end {
			return start, true
		}
	}
	return 0, false
}
