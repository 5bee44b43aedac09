package scheduler

import (
	"errors"
	"testing"

	"park-itinerary-service/internal/domain"
)

func TestNewBlockSetCoversOpenHours(t *testing.T) {
	s := newBlockSet(540, 1260, 10, 15)

	if len(s.blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(s.blocks))
	}
	if b := s.blocks[0]; b.start != 540 || b.end != 1260 {
		t.Fatalf("block = %d-%d, want 540-1260", b.start, b.end)
	}
}

func TestReserveSplitsBlock(t *testing.T) {
	s := newBlockSet(540, 1260, 10, 15)

	if err := s.reserve(720, 780); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if len(s.blocks) != 2 {
		t.Fatalf("blocks = %d, want 2", len(s.blocks))
	}
	if s.blocks[0].end != 720 || s.blocks[1].start != 780 {
		t.Fatalf("split = %d / %d, want 720 / 780", s.blocks[0].end, s.blocks[1].start)
	}
}

func TestReserveOutsideOpenBlockFails(t *testing.T) {
	s := newBlockSet(540, 1260, 10, 15)
	if err := s.reserve(720, 780); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	err := s.reserve(700, 760)
	if !errors.Is(err, ErrNoCapacity) {
		t.Fatalf("expected ErrNoCapacity, got %v", err)
	}
}

func TestRemoveDropsSmallRemnants(t *testing.T) {
	s := newBlockSet(540, 600, 10, 15)

	// Leaves a 5 minute sliver on each side, both below the minimum.
	s.remove(545, 595)
	if len(s.blocks) != 0 {
		t.Fatalf("blocks = %d, want 0", len(s.blocks))
	}
}

func TestCarveUsesBufferedWindow(t *testing.T) {
	s := newBlockSet(540, 1260, 10, 15)

	s.carve(domain.Anchor{StartMin: 1200, EndMin: 1230, BufferBefore: 15, BufferAfter: 10})
	if s.fits(1190, 1200) {
		t.Fatal("arrival buffer must be blocked")
	}
	if s.fits(1230, 1240) {
		t.Fatal("dispersal buffer must be blocked")
	}
	if !s.fits(1240, 1260) {
		t.Fatal("time after the buffered window must stay open")
	}
}

func TestCandidateGapsFollowStride(t *testing.T) {
	s := newBlockSet(540, 630, 10, 15)

	gaps := s.candidateGaps(30)
	want := []int{540, 555, 570, 585, 600}
	if len(gaps) != len(want) {
		t.Fatalf("gaps = %d, want %d", len(gaps), len(want))
	}
	for i, g := range gaps {
		if g.start != want[i] {
			t.Fatalf("gap %d start = %d, want %d", i, g.start, want[i])
		}
		if g.limit != 630 {
			t.Fatalf("gap %d limit = %d, want 630", i, g.limit)
		}
	}
}

func TestEarliestFitAfter(t *testing.T) {
	s := newBlockSet(540, 1260, 10, 15)
	if err := s.reserve(540, 720); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	start, ok := s.earliestFitAfter(600, 30)
	if !ok || start != 720 {
		t.Fatalf("earliestFitAfter = %d/%v, want 720/true", start, ok)
	}

	if _, ok := s.earliestFitAfter(1250, 30); ok {
		t.Fatal("expected no fit near close")
	}
}
