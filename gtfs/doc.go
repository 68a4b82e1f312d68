// Package gtfs parses the tables this service needs out of a GTFS static
// archive: stops.txt for the stop catalog and stop_times.txt for the
// travel-time index. The archive is consumed from memory; nothing is written
// to disk.
package gtfs
