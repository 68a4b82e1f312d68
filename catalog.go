package caltrainlive

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/baytransit/caltrain-live/fiveoneone"
	"github.com/baytransit/caltrain-live/gtfs"
)

// Direction classifies a platform by the suffix of its display name.
type Direction string

const (
	Northbound       Direction = "Northbound"
	Southbound       Direction = "Southbound"
	DirectionUnknown Direction = ""
)

// Stop is one directional platform. The JSON field casing matches the
// upstream stop list the API has always served.
type Stop struct {
	ID   string `json:"id"`
	Name string `json:"Name"`

	direction    Direction
	linePosition int
}

// Direction reports the platform direction tagged at catalog build time.
func (s Stop) Direction() Direction { return s.direction }

// StationName is the display name with the direction suffix stripped.
func (s Stop) StationName() string { return stationName(s.Name) }

var directionSuffixes = strings.NewReplacer(
	" Caltrain Station Northbound", "",
	" Caltrain Station Southbound", "",
)

func stationName(name string) string {
	return strings.TrimSpace(directionSuffixes.Replace(name))
}

func tagDirection(name string) Direction {
	switch {
	case strings.Contains(name, string(Northbound)):
		return Northbound
	case strings.Contains(name, string(Southbound)):
		return Southbound
	}
	return DirectionUnknown
}

// linePosition ranks a stop along the canonical route; unknown stations sort
// after every known one.
func linePosition(name string) int {
	sn := stationName(name)
	for i, st := range stationLineOrder {
		if st == sn {
			return i
		}
	}
	return len(stationLineOrder)
}

// stopNameExcludes removes elevator, shuttle and Stanford stops from the
// catalog (case-insensitive substring match).
var stopNameExcludes = []string{"elevator", "shuttle", "stanford"}

// StopCatalog builds and caches the canonical stop list. Sources are tried
// in order and the first one yielding at least one stop wins; fetch failures
// are logged and treated as an empty result, never propagated.
type StopCatalog struct {
	client     *fiveoneone.Client
	operatorID string
	cache      *ttlCache[[]Stop]
}

func NewStopCatalog(client *fiveoneone.Client, operatorID string, ttl time.Duration) *StopCatalog {
	return &StopCatalog{
		client:     client,
		operatorID: operatorID,
		cache:      newTTLCache[[]Stop](ttl),
	}
}

// Stops returns the catalog, refreshing it when the TTL has lapsed. The
// result is never empty: upstream sources, then the stale cache, then the
// embedded list.
func (c *StopCatalog) Stops(ctx context.Context) []Stop {
	stops, ok := c.cache.GetOrRefresh(func(hasStale bool) ([]Stop, bool) {
		type provider struct {
			name  string
			fetch func(context.Context) ([]Stop, error)
		}
		providers := []provider{
			{"gtfs", c.fromGTFS},
			{"netex", c.fromNeTEx},
		}
		for _, p := range providers {
			raw, err := p.fetch(ctx)
			if err != nil {
				log.Warn().Err(err).Str("source", p.name).Msg("stop source failed")
				continue
			}
			if len(raw) == 0 {
				continue
			}
			log.Debug().Str("source", p.name).Int("stops", len(raw)).Msg("stop catalog built")
			return finalizeStops(raw), true
		}
		if hasStale {
			// the previous list, whatever its age, beats the embedded fallback
			return nil, false
		}
		log.Warn().Msg("all stop sources failed; using embedded list")
		return finalizeStops(embeddedStops), true
	})
	if !ok {
		return finalizeStops(embeddedStops)
	}
	return stops
}

// Age reports how old the cached catalog is.
func (c *StopCatalog) Age() (time.Duration, bool) { return c.cache.Age() }

// fromGTFS extracts stops from the GTFS archive. Parent-station rows are
// skipped and rows need both an id and a name.
func (c *StopCatalog) fromGTFS(ctx context.Context) ([]Stop, error) {
	archive, err := c.client.Datafeed(ctx, c.operatorID)
	if err != nil {
		return nil, err
	}
	bundle, err := gtfs.ParseBundle(archive)
	if err != nil {
		return nil, err
	}
	var stops []Stop
	for _, row := range bundle.Stops {
		if row.LocationType == "1" {
			continue
		}
		if row.ID == "" || row.Name == "" {
			continue
		}
		stops = append(stops, Stop{ID: row.ID, Name: row.Name})
	}
	return stops, nil
}

// fromNeTEx queries the alternate stop endpoint. Rows lacking one of
// id/name are kept as long as the other is present.
func (c *StopCatalog) fromNeTEx(ctx context.Context) ([]Stop, error) {
	points, err := c.client.Stops(ctx, c.operatorID)
	if err != nil {
		return nil, err
	}
	stops := make([]Stop, 0, len(points))
	for _, pt := range points {
		stops = append(stops, Stop{ID: pt.ID.String(), Name: pt.Name})
	}
	return stops, nil
}

// finalizeStops applies the display block-list, tags directions and line
// positions, and sorts by canonical line position. Stations outside the
// canonical ordering keep their relative input order after all known ones.
func finalizeStops(raw []Stop) []Stop {
	stops := make([]Stop, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, s := range raw {
		if excludedStopName(s.Name) {
			continue
		}
		if _, dup := seen[s.ID]; dup && s.ID != "" {
			continue
		}
		seen[s.ID] = struct{}{}
		s.direction = tagDirection(s.Name)
		s.linePosition = linePosition(s.Name)
		stops = append(stops, s)
	}
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].linePosition < stops[j].linePosition
	})
	return stops
}

func excludedStopName(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range stopNameExcludes {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
