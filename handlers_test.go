package caltrainlive

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestAPI serves the API routes backed by the fake 511 world from
// newTestService. The package-level service is swapped in for the test.
func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()
	prev := service
	service = newTestService(t)
	t.Cleanup(func() { service = prev })

	srv := httptest.NewServer(apiMux())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, wantStatus int, out any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s status %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type %q", ct)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	api := newTestAPI(t)

	var health struct {
		Status            string `json:"status"`
		CatalogAgeSeconds int64  `json:"catalog_age_seconds"`
	}
	getJSON(t, api.URL+"/api/health", http.StatusOK, &health)
	if health.Status != "ok" {
		t.Errorf("status = %q", health.Status)
	}
	if health.CatalogAgeSeconds != -1 {
		t.Errorf("catalog age before any fetch = %d, want -1", health.CatalogAgeSeconds)
	}
}

func TestStopsEndpoint(t *testing.T) {
	api := newTestAPI(t)

	var stops []Stop
	getJSON(t, api.URL+"/api/stops", http.StatusOK, &stops)
	if len(stops) != 7 {
		t.Fatalf("got %d stops, want 7", len(stops))
	}
	if stops[0].ID != "70011" {
		t.Errorf("first stop %q, want 70011", stops[0].ID)
	}
}

func TestStopTrainsEndpoint(t *testing.T) {
	api := newTestAPI(t)

	var visits []TrainVisit
	getJSON(t, api.URL+"/api/stops/70012/trains", http.StatusOK, &visits)
	if len(visits) != 2 {
		t.Fatalf("got %d visits, want 2", len(visits))
	}
	if visits[0].Destination != "Tamien" {
		t.Errorf("first visit %q, want Tamien", visits[0].Destination)
	}

	getJSON(t, api.URL+"/api/stops/70012/trains?limit=1", http.StatusOK, &visits)
	if len(visits) != 1 {
		t.Errorf("limit=1 returned %d visits", len(visits))
	}
}

func TestNextTrainsEndpoint(t *testing.T) {
	api := newTestAPI(t)

	var result NextTrainsResult
	getJSON(t, api.URL+"/api/next_trains?stop=Belmont&direction=southbound", http.StatusOK, &result)
	if result.StopID == nil || *result.StopID != "70122" {
		t.Fatalf("stop_id = %v, want 70122", result.StopID)
	}
	if len(result.Trains) != 1 {
		t.Fatalf("got %d trains, want 1", len(result.Trains))
	}

	getJSON(t, api.URL+"/api/next_trains?stop=Belmont", http.StatusOK, &result)
	if result.Message == nil {
		t.Error("ambiguous stop should carry a message")
	}

	getJSON(t, api.URL+"/api/next_trains", http.StatusBadRequest, nil)
}

func TestStopsInDirectionEndpoint(t *testing.T) {
	api := newTestAPI(t)

	var stops []Stop
	getJSON(t, api.URL+"/api/stops_in_direction?from=70012&direction=southbound", http.StatusOK, &stops)
	if len(stops) != 3 {
		t.Fatalf("got %d stops, want 3", len(stops))
	}

	getJSON(t, api.URL+"/api/stops_in_direction?from=70012", http.StatusBadRequest, nil)
	getJSON(t, api.URL+"/api/stops_in_direction?direction=southbound", http.StatusBadRequest, nil)
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		query    string
		def      int
		expected int
	}{
		{"", 5, 5},
		{"limit=3", 5, 3},
		{"limit=0", 5, 5},
		{"limit=-2", 5, 5},
		{"limit=abc", 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			if got := parseLimit(r, tt.def); got != tt.expected {
				t.Errorf("parseLimit(%q) = %d, want %d", tt.query, got, tt.expected)
			}
		})
	}
}
