package caltrainlive

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/baytransit/caltrain-live/fiveoneone"
	"github.com/baytransit/caltrain-live/gtfs"
)

type travelPair struct {
	From string
	To   string
}

// TravelTimeIndex maps ordered stop pairs to a typical travel duration in
// whole minutes, derived from the scheduled stop_times table. Pairs never
// observed within a single trip are absent, not zero.
type TravelTimeIndex struct {
	client     *fiveoneone.Client
	operatorID string
	cache      *ttlCache[map[travelPair]int]
}

func NewTravelTimeIndex(client *fiveoneone.Client, operatorID string, ttl time.Duration) *TravelTimeIndex {
	return &TravelTimeIndex{
		client:     client,
		operatorID: operatorID,
		cache:      newTTLCache[map[travelPair]int](ttl),
	}
}

// Minutes returns the typical travel time between two stops, or nil when it
// is unknown. Equal or missing ids are "not applicable", also nil.
func (t *TravelTimeIndex) Minutes(ctx context.Context, from, to string) *int {
	if from == "" || to == "" || from == to {
		return nil
	}
	index, ok := t.cache.GetOrRefresh(func(bool) (map[travelPair]int, bool) {
		return t.build(ctx)
	})
	if !ok {
		return nil
	}
	if m, found := index[travelPair{From: from, To: to}]; found {
		return &m
	}
	return nil
}

// build fetches the schedule archive and derives the pair medians. Unlike
// the stop catalog there is no fallback chain; a failed build just means
// every query answers nil until the next attempt.
func (t *TravelTimeIndex) build(ctx context.Context) (map[travelPair]int, bool) {
	archive, err := t.client.Datafeed(ctx, t.operatorID)
	if err != nil {
		log.Warn().Err(err).Msg("travel time source fetch failed")
		return nil, false
	}
	bundle, err := gtfs.ParseBundle(archive)
	if err != nil {
		log.Warn().Err(err).Msg("travel time archive did not parse")
		return nil, false
	}
	if bundle.StopTimes == nil {
		return nil, false
	}
	index := buildTravelIndex(bundle.StopTimes)
	log.Debug().Int("pairs", len(index)).Msg("travel time index built")
	return index, true
}

// buildTravelIndex groups rows by trip, orders each trip by stop sequence,
// and records elapsed minutes for every ordered stop pair within the trip.
// The stored estimate per pair is the median across all trips.
func buildTravelIndex(rows []gtfs.StopTime) map[travelPair]int {
	byTrip := map[string][]gtfs.StopTime{}
	for _, row := range rows {
		if row.TripID == "" || row.StopID == "" || row.DepartureSec < 0 {
			continue
		}
		byTrip[row.TripID] = append(byTrip[row.TripID], row)
	}

	observed := map[travelPair][]int{}
	for _, stops := range byTrip {
		sort.SliceStable(stops, func(i, j int) bool {
			return stops[i].StopSequence < stops[j].StopSequence
		})
		for i := range stops {
			for j := i + 1; j < len(stops); j++ {
				toSec := stops[j].ArrivalSec
				if toSec < 0 {
					toSec = stops[j].DepartureSec
				}
				// negative elapsed time means bad sequence data
				if toSec < stops[i].DepartureSec {
					continue
				}
				key := travelPair{From: stops[i].StopID, To: stops[j].StopID}
				observed[key] = append(observed[key], (toSec-stops[i].DepartureSec)/60)
			}
		}
	}

	index := make(map[travelPair]int, len(observed))
	for key, minutes := range observed {
		index[key] = median(minutes)
	}
	return index
}

// median of a non-empty list; an even count averages the two central values
// with integer division.
func median(values []int) int {
	sort.Ints(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}
	return (values[mid-1] + values[mid]) / 2
}
