package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
)

// ParseBundle reads a GTFS zip archive from memory and extracts the stops
// and stop_times tables. File name matching is case-insensitive; feeds have
// shipped Stops.txt before.
func ParseBundle(archive []byte) (*Bundle, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, err
	}
	b := &Bundle{}
	for _, f := range zr.File {
		switch strings.ToLower(f.Name) {
		case "stops.txt":
			if err := b.consumeStops(f); err != nil {
				return nil, err
			}
		case "stop_times.txt":
			if err := b.consumeStopTimes(f); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

func readCSV(f *zip.File) ([][]string, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	return csvr.ReadAll()
}

// headerIndex returns a lookup from column name to index, matched
// case-insensitively.
func headerIndex(head []string) func(col string) int {
	return func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (b *Bundle) consumeStops(f *zip.File) error {
	rec, err := readCSV(f)
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	idx := headerIndex(rec[0])
	sID := idx("stop_id")
	sName := idx("stop_name")
	sLoc := idx("location_type")
	for _, row := range rec[1:] {
		b.Stops = append(b.Stops, Stop{
			ID:           field(row, sID),
			Name:         field(row, sName),
			LocationType: field(row, sLoc),
		})
	}
	return nil
}

func (b *Bundle) consumeStopTimes(f *zip.File) error {
	rec, err := readCSV(f)
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	idx := headerIndex(rec[0])
	tID := idx("trip_id")
	sID := idx("stop_id")
	seq := idx("stop_sequence")
	arr := idx("arrival_time")
	dep := idx("departure_time")
	if tID < 0 || sID < 0 || seq < 0 {
		return nil
	}
	for _, row := range rec[1:] {
		seqNum, err := strconv.Atoi(field(row, seq))
		if err != nil {
			continue
		}
		b.StopTimes = append(b.StopTimes, StopTime{
			TripID:       field(row, tID),
			StopID:       field(row, sID),
			StopSequence: seqNum,
			ArrivalSec:   TimeToSeconds(field(row, arr)),
			DepartureSec: TimeToSeconds(field(row, dep)),
		})
	}
	return nil
}

// TimeToSeconds converts a GTFS time-of-day string (H:MM:SS or HH:MM:SS,
// hours may exceed 23 for past-midnight service) to seconds since midnight.
// Returns -1 when the string does not parse.
func TimeToSeconds(t string) int {
	parts := strings.Split(strings.TrimSpace(t), ":")
	if len(parts) != 3 {
		return -1
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	s, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil || h < 0 || m < 0 || s < 0 {
		return -1
	}
	return h*3600 + m*60 + s
}
