package caltrainlive

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/baytransit/caltrain-live/fiveoneone"
)

// TrainVisit is one predicted or scheduled train event at a stop,
// constructed fresh per request. Raw UTC timestamps are preserved next to
// their local renderings.
type TrainVisit struct {
	LineName    string `json:"line_name"`
	LineRef     string `json:"line_ref"`
	Destination string `json:"destination"`

	ExpectedDeparture string `json:"expected_departure,omitempty"`
	ExpectedArrival   string `json:"expected_arrival,omitempty"`
	AimedDeparture    string `json:"aimed_departure,omitempty"`
	AimedArrival      string `json:"aimed_arrival,omitempty"`

	ExpectedDepartureLocal string `json:"expected_departure_local,omitempty"`
	ExpectedArrivalLocal   string `json:"expected_arrival_local,omitempty"`
	AimedDepartureLocal    string `json:"aimed_departure_local,omitempty"`
	AimedArrivalLocal      string `json:"aimed_arrival_local,omitempty"`

	MinutesUntil *int `json:"minutes_until,omitempty"`
}

// NextArrivals returns upcoming visits at a stop, soonest first. The whole
// agency feed is fetched and filtered client-side; 511 returns more visits
// per stop that way. Upstream failure yields an empty list, never an error.
func (s *Service) NextArrivals(ctx context.Context, stopID string, limit int) []TrainVisit {
	raw, err := s.client.StopMonitoring(ctx, s.operatorID)
	if err != nil {
		log.Warn().Err(err).Str("stop", stopID).Msg("stop monitoring fetch failed")
		return []TrainVisit{}
	}
	visits := buildVisits(raw, stopID, s.loc, time.Now())
	if limit > 0 && len(visits) > limit {
		visits = visits[:limit]
	}
	return visits
}

// buildVisits filters the feed to one stop and normalizes each visit.
func buildVisits(raw []fiveoneone.MonitoredStopVisit, stopID string, loc *time.Location, now time.Time) []TrainVisit {
	visits := make([]TrainVisit, 0, 8)
	for _, v := range raw {
		if v.MonitoringRef != stopID {
			continue
		}
		journey := v.MonitoredVehicleJourney
		call := journey.MonitoredCall
		tv := TrainVisit{
			LineName:    strings.TrimSpace(journey.PublishedLineName),
			LineRef:     strings.TrimSpace(journey.LineRef),
			Destination: strings.TrimSpace(journey.DestinationName),

			ExpectedDeparture: call.ExpectedDepartureTime,
			ExpectedArrival:   call.ExpectedArrivalTime,
			AimedDeparture:    call.AimedDepartureTime,
			AimedArrival:      call.AimedArrivalTime,

			ExpectedDepartureLocal: localClock(call.ExpectedDepartureTime, loc),
			ExpectedArrivalLocal:   localClock(call.ExpectedArrivalTime, loc),
			AimedDepartureLocal:    localClock(call.AimedDepartureTime, loc),
			AimedArrivalLocal:      localClock(call.AimedArrivalTime, loc),
		}
		if best := tv.bestExpectedTime(); best != "" {
			tv.MinutesUntil = minutesUntil(best, now)
		}
		visits = append(visits, tv)
	}
	sortVisits(visits)
	return visits
}

// bestExpectedTime is the timestamp a visit is ranked and surfaced by:
// expected departure when present, else expected arrival.
func (v TrainVisit) bestExpectedTime() string {
	if v.ExpectedDeparture != "" {
		return v.ExpectedDeparture
	}
	return v.ExpectedArrival
}

// sortVisits orders soonest first. The ISO timestamps share a format, so
// string order is chronological. Visits without any expected time go last,
// keeping their relative order.
func sortVisits(visits []TrainVisit) {
	sort.SliceStable(visits, func(i, j int) bool {
		ti, tj := visits[i].bestExpectedTime(), visits[j].bestExpectedTime()
		if ti == "" {
			return false
		}
		if tj == "" {
			return true
		}
		return ti < tj
	})
}
