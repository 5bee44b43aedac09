package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"park-itinerary-service/internal/domain"
	"park-itinerary-service/internal/scheduler"
)

// VenueFile is the YAML description of a venue: zones, the static adjacency
// table, walk-tier minutes, hours per day class, and the hop table for
// multi-venue passes. This is supplied configuration data, never computed.
type VenueFile struct {
	Venue struct {
		ID             string   `yaml:"id"`
		Name           string   `yaml:"name"`
		Zones          []string `yaml:"zones"`
		CloseBufferMin int      `yaml:"close_buffer_min"`
		Hours          map[string]struct {
			Open  string `yaml:"open"`
			Close string `yaml:"close"`
		} `yaml:"hours"`
	} `yaml:"venue"`

	Walk struct {
		SameMin     int `yaml:"same_min"`
		AdjacentMin int `yaml:"adjacent_min"`
		DistantMin  int `yaml:"distant_min"`
	} `yaml:"walk"`

	Adjacency []struct {
		A string `yaml:"a"`
		B string `yaml:"b"`
	} `yaml:"adjacency"`

	Hop struct {
		EligibleAfter    string `yaml:"eligible_after"`
		DefaultTravelMin int    `yaml:"default_travel_min"`
		Travel           []struct {
			From    string `yaml:"from"`
			To      string `yaml:"to"`
			Minutes int    `yaml:"minutes"`
		} `yaml:"travel"`
	} `yaml:"hop"`
}

// LoadVenueFile reads and parses a venue YAML file.
func LoadVenueFile(path string) (*VenueFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load venue file: read %q: %w", path, err)
	}

	var f VenueFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("load venue file: parse %q: %w", path, err)
	}

	if f.Venue.ID == "" {
		return nil, fmt.Errorf("load venue file: %q: venue.id is required", path)
	}
	if len(f.Venue.Hours) == 0 {
		return nil, fmt.Errorf("load venue file: %q: venue.hours is required", path)
	}

	return &f, nil
}

// ZoneMap builds the scheduler proximity model from the walk constants and
// adjacency pairs.
func (f *VenueFile) ZoneMap() *scheduler.ZoneMap {
	pairs := make([]scheduler.ZonePair, 0, len(f.Adjacency))
	for _, p := range f.Adjacency {
		pairs = append(pairs, scheduler.ZonePair{A: p.A, B: p.B})
	}
	return scheduler.NewZoneMap(f.Walk.SameMin, f.Walk.AdjacentMin, f.Walk.DistantMin, pairs)
}

// DomainVenue converts the file into the domain venue with parsed hours.
func (f *VenueFile) DomainVenue() (domain.Venue, error) {
	v := domain.Venue{
		ID:    f.Venue.ID,
		Name:  f.Venue.Name,
		Zones: f.Venue.Zones,
		Hours: make(map[domain.DayClass]domain.OpenHours, len(f.Venue.Hours)),
	}

	for class, h := range f.Venue.Hours {
		open, err := scheduler.ParseClock(h.Open)
		if err != nil {
			return domain.Venue{}, fmt.Errorf("venue hours %s: %w", class, err)
		}
		closeMin, err := scheduler.ParseClock(h.Close)
		if err != nil {
			return domain.Venue{}, fmt.Errorf("venue hours %s: %w", class, err)
		}
		v.Hours[domain.DayClass(class)] = domain.OpenHours{OpenMin: open, CloseMin: closeMin}
	}

	return v, nil
}

// HopConfig builds the scheduler hop configuration for a transition to the
// given venue at the requested minute.
func (f *VenueFile) HopConfig(toVenue string, requestedMin int) (*scheduler.HopConfig, error) {
	eligible := 0
	if f.Hop.EligibleAfter != "" {
		m, err := scheduler.ParseClock(f.Hop.EligibleAfter)
		if err != nil {
			return nil, fmt.Errorf("hop eligible_after: %w", err)
		}
		eligible = m
	}

	travel := make(map[string]int, len(f.Hop.Travel))
	for _, t := range f.Hop.Travel {
		travel[t.From+"|"+t.To] = t.Minutes
	}

	defaultTravel := f.Hop.DefaultTravelMin
	if defaultTravel <= 0 {
		defaultTravel = 45
	}

	return &scheduler.HopConfig{
		FromVenue:        f.Venue.ID,
		ToVenue:          toVenue,
		RequestedMin:     requestedMin,
		EligibleAfterMin: eligible,
		TravelMin:        travel,
		DefaultTravelMin: defaultTravel,
	}, nil
}
