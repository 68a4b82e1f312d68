package caltrainlive

import (
	"testing"
	"time"

	"github.com/baytransit/caltrain-live/fiveoneone"
)

func visit(stopID, dest, expectedDep, expectedArr string) fiveoneone.MonitoredStopVisit {
	return fiveoneone.MonitoredStopVisit{
		MonitoringRef: stopID,
		MonitoredVehicleJourney: fiveoneone.MonitoredVehicleJourney{
			LineRef:           "Local",
			PublishedLineName: " Local Weekday ",
			DestinationName:   dest,
			MonitoredCall: fiveoneone.MonitoredCall{
				ExpectedDepartureTime: expectedDep,
				ExpectedArrivalTime:   expectedArr,
			},
		},
	}
}

func TestBuildVisitsFiltersAndSorts(t *testing.T) {
	loc := pacificLocation(t)
	now := time.Date(2025, 1, 15, 16, 0, 0, 0, time.UTC)

	raw := []fiveoneone.MonitoredStopVisit{
		visit("70122", "San Jose", "2025-01-15T16:20:00Z", ""),
		visit("70011", "San Francisco", "2025-01-15T16:05:00Z", ""),
		visit("70122", "Gilroy", "", ""),
		visit("70122", "Tamien", "2025-01-15T16:05:00Z", ""),
		visit("70122", "San Jose Diridon", "", "2025-01-15T16:10:00Z"),
	}

	visits := buildVisits(raw, "70122", loc, now)

	if len(visits) != 4 {
		t.Fatalf("got %d visits, want 4", len(visits))
	}

	order := []string{"Tamien", "San Jose Diridon", "San Jose", "Gilroy"}
	for i, want := range order {
		if visits[i].Destination != want {
			t.Fatalf("position %d is %q, want %q", i, visits[i].Destination, want)
		}
	}

	if visits[0].LineName != "Local Weekday" {
		t.Errorf("line name not trimmed: %q", visits[0].LineName)
	}
	if visits[0].MinutesUntil == nil || *visits[0].MinutesUntil != 5 {
		t.Errorf("minutes until = %v, want 5", visits[0].MinutesUntil)
	}
	if visits[1].MinutesUntil == nil || *visits[1].MinutesUntil != 10 {
		t.Errorf("arrival-only visit minutes = %v, want 10", visits[1].MinutesUntil)
	}
	if visits[3].MinutesUntil != nil {
		t.Errorf("timeless visit minutes = %d, want nil", *visits[3].MinutesUntil)
	}
	if visits[0].ExpectedDepartureLocal != "8:05 AM" {
		t.Errorf("local clock = %q, want %q", visits[0].ExpectedDepartureLocal, "8:05 AM")
	}
}

func TestBuildVisitsKeepsTimelessOrder(t *testing.T) {
	loc := pacificLocation(t)
	now := time.Date(2025, 1, 15, 16, 0, 0, 0, time.UTC)

	raw := []fiveoneone.MonitoredStopVisit{
		visit("70122", "First", "", ""),
		visit("70122", "Second", "", ""),
		visit("70122", "Timed", "2025-01-15T16:30:00Z", ""),
	}

	visits := buildVisits(raw, "70122", loc, now)
	if len(visits) != 3 {
		t.Fatalf("got %d visits, want 3", len(visits))
	}
	if visits[0].Destination != "Timed" {
		t.Errorf("timed visit should sort first, got %q", visits[0].Destination)
	}
	if visits[1].Destination != "First" || visits[2].Destination != "Second" {
		t.Errorf("timeless visits reordered: %q, %q", visits[1].Destination, visits[2].Destination)
	}
}

func TestBuildVisitsNoMatches(t *testing.T) {
	loc := pacificLocation(t)
	raw := []fiveoneone.MonitoredStopVisit{
		visit("70011", "San Francisco", "2025-01-15T16:05:00Z", ""),
	}
	visits := buildVisits(raw, "70122", loc, time.Now())
	if visits == nil {
		t.Fatal("expected an empty slice, not nil")
	}
	if len(visits) != 0 {
		t.Fatalf("got %d visits, want 0", len(visits))
	}
}
