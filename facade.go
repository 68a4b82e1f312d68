package caltrainlive

import (
	"context"
	"strings"
	"time"

	"github.com/baytransit/caltrain-live/fiveoneone"
)

// placeholderDash stands in for absent display values.
const placeholderDash = "—"

// Service composes the stop catalog, resolver, arrival fetcher and
// travel-time index into the operations the HTTP layer and CLI call. Every
// operation returns a well-formed (possibly empty) result; upstream
// failures never surface as errors.
type Service struct {
	client       *fiveoneone.Client
	catalog      *StopCatalog
	travel       *TravelTimeIndex
	loc          *time.Location
	operatorID   string
	defaultLimit int
}

func NewService(cfg AppConfig) (*Service, error) {
	loc, err := time.LoadLocation(cfg.Display.Timezone)
	if err != nil {
		return nil, err
	}
	client := fiveoneone.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.APIKey,
		time.Duration(cfg.Upstream.TimeoutMS)*time.Millisecond)
	defaultLimit := cfg.Display.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = 5
	}
	return &Service{
		client:       client,
		catalog:      NewStopCatalog(client, cfg.Upstream.OperatorID, time.Duration(cfg.Cache.StopsTTLHours)*time.Hour),
		travel:       NewTravelTimeIndex(client, cfg.Upstream.OperatorID, time.Duration(cfg.Cache.TravelTimeTTLHours)*time.Hour),
		loc:          loc,
		operatorID:   cfg.Upstream.OperatorID,
		defaultLimit: defaultLimit,
	}, nil
}

// ListStops returns the catalog in line order.
func (s *Service) ListStops(ctx context.Context) []Stop {
	return s.catalog.Stops(ctx)
}

// ResolveStop disambiguates a stop token against the current catalog.
func (s *Service) ResolveStop(ctx context.Context, token, direction string) ResolvedStop {
	return resolveStop(s.catalog.Stops(ctx), token, direction)
}

// StopsInDirection lists the stations reachable in the given direction from
// a reference stop, one entry per station, in line order. Unresolvable
// references yield an empty list.
func (s *Service) StopsInDirection(ctx context.Context, from, direction string) []Stop {
	resolved := s.ResolveStop(ctx, from, direction)
	if !resolved.OK() {
		return []Stop{}
	}
	stops := s.catalog.Stops(ctx)
	fromPos := -1
	for _, st := range stops {
		if st.ID == resolved.ID {
			fromPos = st.linePosition
			break
		}
	}
	if fromPos == -1 {
		return []Stop{}
	}
	wantSouth := strings.Contains(strings.ToLower(direction), "south")
	out := []Stop{}
	seen := map[string]struct{}{}
	for _, st := range stops {
		if st.ID == resolved.ID {
			continue
		}
		inDirection := (wantSouth && st.linePosition > fromPos) ||
			(!wantSouth && st.linePosition < fromPos)
		if !inDirection {
			continue
		}
		name := st.StationName()
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, st)
	}
	return out
}

// TrainSummary is the compact per-train record served to callers.
type TrainSummary struct {
	Service       string `json:"service"`
	Destination   string `json:"destination"`
	Time          string `json:"time"`
	MinutesUntil  *int   `json:"minutes_until"`
	TravelMinutes *int   `json:"travel_minutes,omitempty"`
}

// NextTrainsResult carries the resolved stop, its upcoming trains, and the
// disambiguation message when resolution failed. Callers distinguish "not
// found" (empty, no message) from "ambiguous" (empty, message set).
type NextTrainsResult struct {
	StopID   *string        `json:"stop_id"`
	StopName *string        `json:"stop_name"`
	Trains   []TrainSummary `json:"trains"`
	Message  *string        `json:"message"`
}

// NextTrains resolves a stop token and returns its next trains. When a
// destination token is given and a travel-time estimate exists for the
// pair, each train carries it.
func (s *Service) NextTrains(ctx context.Context, token string, limit int, direction, toToken string) NextTrainsResult {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	resolved := s.ResolveStop(ctx, token, direction)
	if !resolved.OK() {
		res := NextTrainsResult{Trains: []TrainSummary{}}
		if resolved.Message != "" {
			res.Message = &resolved.Message
		}
		return res
	}

	var travelMin *int
	if toToken != "" {
		if to := s.ResolveStop(ctx, toToken, direction); to.OK() {
			travelMin = s.travel.Minutes(ctx, resolved.ID, to.ID)
		}
	}

	visits := s.NextArrivals(ctx, resolved.ID, limit)
	trains := make([]TrainSummary, 0, len(visits))
	for _, v := range visits {
		tag := serviceTag(v.LineRef)
		if tag == "" {
			tag = v.LineName
		}
		if tag == "" {
			tag = placeholderDash
		}
		dest := v.Destination
		if dest == "" {
			dest = placeholderDash
		}
		timeStr := v.ExpectedDepartureLocal
		if timeStr == "" {
			timeStr = v.ExpectedArrivalLocal
		}
		if timeStr == "" {
			timeStr = placeholderDash
		}
		trains = append(trains, TrainSummary{
			Service:       tag,
			Destination:   dest,
			Time:          timeStr,
			MinutesUntil:  v.MinutesUntil,
			TravelMinutes: travelMin,
		})
	}

	res := NextTrainsResult{StopID: &resolved.ID, Trains: trains}
	if resolved.Name != "" {
		res.StopName = &resolved.Name
	}
	return res
}

// serviceTag collapses a 511 LineRef into the coarse service class riders
// know. Unrecognized refs pass through as-is; the match order is
// significant ("Weekend Local" refs classify as Local).
func serviceTag(lineRef string) string {
	r := strings.ToLower(lineRef)
	switch {
	case r == "":
		return ""
	case strings.Contains(r, "limited") || strings.Contains(r, "baby bullet"):
		return "Limited"
	case strings.Contains(r, "express"):
		return "Express"
	case strings.Contains(r, "local"):
		return "Local"
	case strings.Contains(r, "weekend"):
		return "Weekend Local"
	case strings.Contains(r, "south county") || strings.Contains(r, "connector"):
		return "South County"
	}
	return strings.TrimSpace(lineRef)
}
