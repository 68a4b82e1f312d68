package caltrainlive

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// parseLimit reads the limit query parameter, falling back to def when the
// parameter is absent or not a positive integer.
func parseLimit(r *http.Request, def int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// GET /api/stops — the full stop catalog in line order.
func handleStops(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, service.ListStops(r.Context()))
}

// GET /api/stops/{stop_id}/trains — raw predictions at a stop.
func handleStopTrains(w http.ResponseWriter, r *http.Request) {
	stopID := r.PathValue("stop_id")
	writeJSON(w, http.StatusOK, service.NextArrivals(r.Context(), stopID, parseLimit(r, 10)))
}

// GET /api/stops_in_direction?from=...&direction=... — stations beyond a
// reference stop in one direction.
func handleStopsInDirection(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := q.Get("from")
	direction := q.Get("direction")
	if from == "" || direction == "" {
		writeError(w, http.StatusBadRequest, "from and direction are required")
		return
	}
	writeJSON(w, http.StatusOK, service.StopsInDirection(r.Context(), from, direction))
}

// GET /api/next_trains?stop=...&limit=&direction=&to= — next trains at a
// stop by id or name; direction disambiguates two-platform names, to adds a
// travel-time estimate.
func handleNextTrains(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	stop := q.Get("stop")
	if stop == "" {
		writeError(w, http.StatusBadRequest, "stop is required")
		return
	}
	result := service.NextTrains(r.Context(), stop, parseLimit(r, service.defaultLimit), q.Get("direction"), q.Get("to"))
	writeJSON(w, http.StatusOK, result)
}
