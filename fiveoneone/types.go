package fiveoneone

import (
	"encoding/json"
	"strconv"
)

// SIRI StopMonitoring shapes, limited to the fields this service reads.
// 511 serves SIRI as JSON with StopMonitoringDelivery as a single object
// rather than the array the SIRI schema would suggest.

type stopMonitoringResponse struct {
	ServiceDelivery serviceDelivery `json:"ServiceDelivery"`
}

type serviceDelivery struct {
	StopMonitoringDelivery stopMonitoringDelivery `json:"StopMonitoringDelivery"`
}

type stopMonitoringDelivery struct {
	MonitoredStopVisit []MonitoredStopVisit `json:"MonitoredStopVisit"`
}

// MonitoredStopVisit is one predicted train event in the feed.
type MonitoredStopVisit struct {
	MonitoringRef           string                  `json:"MonitoringRef"`
	MonitoredVehicleJourney MonitoredVehicleJourney `json:"MonitoredVehicleJourney"`
}

// MonitoredVehicleJourney carries the line and destination of a visit.
type MonitoredVehicleJourney struct {
	LineRef           string        `json:"LineRef"`
	PublishedLineName string        `json:"PublishedLineName"`
	DestinationName   string        `json:"DestinationName"`
	MonitoredCall     MonitoredCall `json:"MonitoredCall"`
}

// MonitoredCall holds the four timestamp fields of a visit, as UTC ISO 8601
// strings. Any of them may be empty.
type MonitoredCall struct {
	AimedArrivalTime      string `json:"AimedArrivalTime"`
	ExpectedArrivalTime   string `json:"ExpectedArrivalTime"`
	AimedDepartureTime    string `json:"AimedDepartureTime"`
	ExpectedDepartureTime string `json:"ExpectedDepartureTime"`
}

// StopPoint is one entry of the NeTEx stop list. IDs have arrived both as
// JSON strings and as numbers, so the field decodes either.
type StopPoint struct {
	ID   flexString `json:"id"`
	Name string     `json:"Name"`
}

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*f = flexString(strconv.FormatInt(i, 10))
	} else {
		*f = flexString(n.String())
	}
	return nil
}

type stopsResponse struct {
	Contents struct {
		DataObjects json.RawMessage `json:"dataObjects"`
	} `json:"Contents"`
}

// decodeStopPoints handles the two observed /stops response shapes: a
// mapping holding ScheduledStopPoint(s) arrays, or dataObjects as a bare
// array. Rows missing both id and name are dropped.
func decodeStopPoints(body []byte) ([]StopPoint, error) {
	var resp stopsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	raw := resp.Contents.DataObjects
	if len(raw) == 0 {
		return nil, nil
	}

	var points []StopPoint
	var asMap struct {
		ScheduledStopPoint  []StopPoint `json:"ScheduledStopPoint"`
		ScheduledStopPoints []StopPoint `json:"ScheduledStopPoints"`
	}
	if err := json.Unmarshal(raw, &asMap); err == nil {
		points = asMap.ScheduledStopPoint
		if len(points) == 0 {
			points = asMap.ScheduledStopPoints
		}
	}
	if len(points) == 0 {
		var asList []StopPoint
		if err := json.Unmarshal(raw, &asList); err == nil {
			points = asList
		}
	}

	out := make([]StopPoint, 0, len(points))
	for _, pt := range points {
		if pt.ID == "" && pt.Name == "" {
			continue
		}
		out = append(out, pt)
	}
	return out, nil
}

// String returns the flexString as a plain string.
func (f flexString) String() string { return string(f) }
