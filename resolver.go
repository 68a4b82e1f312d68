package caltrainlive

import "strings"

// ambiguousStopMessage is returned when a name matches both platforms of a
// station and no direction was given.
const ambiguousStopMessage = "Multiple stops match. Specify direction: Northbound or Southbound."

// ResolvedStop is the outcome of disambiguating a user-supplied stop token.
// An empty ID with a non-empty Message means the token was ambiguous; an
// empty ID without a message means it did not match anything.
type ResolvedStop struct {
	ID      string
	Name    string
	Message string
}

// OK reports whether the token resolved to a concrete stop.
func (r ResolvedStop) OK() bool { return r.ID != "" }

// NormalizeDirection maps the accepted direction spellings onto the
// canonical tags. Anything else is DirectionUnknown.
func NormalizeDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "northbound", "north", "nb", "n":
		return Northbound
	case "southbound", "south", "sb", "s":
		return Southbound
	}
	return DirectionUnknown
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// resolveStop maps a stop token (id or free-text name) to one catalog stop.
//
// Digit-only tokens are treated as literal ids; an id absent from the
// catalog is still returned without a name, so callers can query stops the
// catalog does not know yet. Name tokens match case-insensitively as
// substrings; when a name matches both platforms of a station the direction
// argument decides, and without one the result carries the ambiguity
// message.
func resolveStop(stops []Stop, token, direction string) ResolvedStop {
	token = strings.TrimSpace(token)
	if token == "" {
		return ResolvedStop{}
	}
	if isDigits(token) {
		for _, st := range stops {
			if st.ID == token {
				return ResolvedStop{ID: st.ID, Name: st.Name}
			}
		}
		return ResolvedStop{ID: token}
	}

	needle := strings.ToLower(token)
	var matches []Stop
	for _, st := range stops {
		if strings.Contains(strings.ToLower(st.Name), needle) {
			matches = append(matches, st)
		}
	}
	switch len(matches) {
	case 0:
		return ResolvedStop{}
	case 1:
		return ResolvedStop{ID: matches[0].ID, Name: matches[0].Name}
	}
	if want := NormalizeDirection(direction); want != DirectionUnknown {
		for _, st := range matches {
			if st.direction == want {
				return ResolvedStop{ID: st.ID, Name: st.Name}
			}
		}
		return ResolvedStop{}
	}
	return ResolvedStop{Message: ambiguousStopMessage}
}
