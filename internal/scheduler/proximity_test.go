package scheduler

import "testing"

func testZoneMap() *ZoneMap {
	return NewZoneMap(2, 8, 18, []ZonePair{
		{A: "gateway plaza", B: "frontier falls"},
		{A: "gateway plaza", B: "cosmic coast"},
	})
}

func TestZoneMapWalkTime(t *testing.T) {
	z := testZoneMap()

	if got := z.WalkTime("gateway plaza", "gateway plaza"); got != 2 {
		t.Fatalf("same zone walk = %d, want 2", got)
	}
	if got := z.WalkTime("gateway plaza", "frontier falls"); got != 8 {
		t.Fatalf("adjacent walk = %d, want 8", got)
	}
	if got := z.WalkTime("frontier falls", "cosmic coast"); got != 18 {
		t.Fatalf("distant walk = %d, want 18", got)
	}
}

func TestZoneMapAdjacencyIsSymmetric(t *testing.T) {
	z := testZoneMap()

	if z.WalkTime("frontier falls", "gateway plaza") != z.WalkTime("gateway plaza", "frontier falls") {
		t.Fatal("adjacency must be symmetric")
	}
}

func TestZoneMapNormalizesNames(t *testing.T) {
	z := testZoneMap()

	if got := z.ProximityScore("Gateway  Plaza", "FRONTIER FALLS"); got != proximityAdjacent {
		t.Fatalf("score = %v, want %v", got, proximityAdjacent)
	}
}

func TestZoneMapProximityScores(t *testing.T) {
	z := testZoneMap()

	if got := z.ProximityScore("cosmic coast", "cosmic coast"); got != proximitySame {
		t.Fatalf("same score = %v, want %v", got, proximitySame)
	}
	if got := z.ProximityScore("frontier falls", "cosmic coast"); got != proximityDistant {
		t.Fatalf("distant score = %v, want %v", got, proximityDistant)
	}
}
