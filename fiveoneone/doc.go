// Package fiveoneone is a thin HTTP client for the 511 SF Bay transit API.
//
// It covers the three endpoints the service consumes: the GTFS datafeed
// archive, the NeTEx stop list, and the SIRI StopMonitoring feed. All
// responses are UTF-8 with a leading byte-order mark that must be stripped
// before JSON decoding.
package fiveoneone
