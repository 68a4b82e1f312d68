package gtfs

// Stop is one row of stops.txt. LocationType is kept raw; "1" marks a parent
// station rather than a boardable platform.
type Stop struct {
	ID           string
	Name         string
	LocationType string
}

// StopTime is one row of stop_times.txt with times already converted to
// seconds since midnight. A negative second value means the column was
// missing or unparsable.
type StopTime struct {
	TripID       string
	StopID       string
	StopSequence int
	ArrivalSec   int
	DepartureSec int
}

// Bundle holds the parsed tables of one GTFS archive.
type Bundle struct {
	Stops     []Stop
	StopTimes []StopTime
}
