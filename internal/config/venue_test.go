package config

import (
	"os"
	"path/filepath"
	"testing"

	"park-itinerary-service/internal/domain"
)

const venueYAML = `
venue:
  id: adventure-park
  name: Adventure Park
  zones:
    - gateway plaza
    - frontier falls
  close_buffer_min: 30
  hours:
    regular:
      open: "09:00"
      close: "21:00"
    peak:
      open: "08:00"
      close: "23:00"
walk:
  same_min: 2
  adjacent_min: 8
  distant_min: 18
adjacency:
  - a: gateway plaza
    b: frontier falls
hop:
  eligible_after: "14:00"
  default_travel_min: 45
  travel:
    - from: adventure-park
      to: lagoon-park
      minutes: 35
`

func writeVenueFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "venue.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write venue file: %v", err)
	}
	return path
}

func TestLoadVenueFile(t *testing.T) {
	f, err := LoadVenueFile(writeVenueFile(t, venueYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.Venue.ID != "adventure-park" {
		t.Fatalf("id = %q, want adventure-park", f.Venue.ID)
	}
	if f.Venue.CloseBufferMin != 30 {
		t.Fatalf("close buffer = %d, want 30", f.Venue.CloseBufferMin)
	}

	v, err := f.DomainVenue()
	if err != nil {
		t.Fatalf("domain venue: %v", err)
	}
	if h := v.HoursFor(domain.DayRegular); h.OpenMin != 540 || h.CloseMin != 1260 {
		t.Fatalf("regular hours = %d-%d, want 540-1260", h.OpenMin, h.CloseMin)
	}
	if h := v.HoursFor(domain.DayElevated); h.OpenMin != 540 {
		t.Fatalf("elevated fallback open = %d, want 540", h.OpenMin)
	}

	z := f.ZoneMap()
	if got := z.WalkTime("gateway plaza", "frontier falls"); got != 8 {
		t.Fatalf("adjacent walk = %d, want 8", got)
	}
}

func TestLoadVenueFileHopConfig(t *testing.T) {
	f, err := LoadVenueFile(writeVenueFile(t, venueYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hop, err := f.HopConfig("lagoon-park", 15*60)
	if err != nil {
		t.Fatalf("hop config: %v", err)
	}

	if hop.EligibleAfterMin != 14*60 {
		t.Fatalf("eligible after = %d, want 840", hop.EligibleAfterMin)
	}
	if hop.RequestedMin != 15*60 {
		t.Fatalf("requested = %d, want 900", hop.RequestedMin)
	}
	if got := hop.TravelMin["adventure-park|lagoon-park"]; got != 35 {
		t.Fatalf("travel = %d, want 35", got)
	}
}

func TestLoadVenueFileValidation(t *testing.T) {
	if _, err := LoadVenueFile(writeVenueFile(t, "venue:\n  name: nameless\n")); err == nil {
		t.Fatal("expected an error for a venue without an id")
	}
	if _, err := LoadVenueFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
