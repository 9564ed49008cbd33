package models

import (
	"strings"

	"github.com/paulmach/orb"
)

type GeoPoint struct {
	Lat float64
	Lon float64
}

// Point returns the orb representation, which is ordered [lon, lat].
func (g GeoPoint) Point() orb.Point {
	return orb.Point{g.Lon, g.Lat}
}

// Volunteer is one roster row. RowIndex is the 1-based spreadsheet row and
// doubles as the tie-breaker for equal distances.
type Volunteer struct {
	RowIndex            int
	Name                string
	Date                string
	LanguagesKnown      string
	LocationCoordinates string
	Session             string
	Qualification       string
}

type Query struct {
	Location      string `json:"location"`
	Date          string `json:"date"`
	Language      string `json:"language"`
	Session       string `json:"session"`
	Qualification string `json:"qualification"`
}

// Trimmed returns a copy of q with surrounding whitespace removed from every field.
func (q Query) Trimmed() Query {
	return Query{
		Location:      strings.TrimSpace(q.Location),
		Date:          strings.TrimSpace(q.Date),
		Language:      strings.TrimSpace(q.Language),
		Session:       strings.TrimSpace(q.Session),
		Qualification: strings.TrimSpace(q.Qualification),
	}
}

type RankedVolunteer struct {
	Volunteer Volunteer
	Distance  float64 // km
}

type MatchResult struct {
	Name                string  `json:"Name"`
	LocationCoordinates string  `json:"Location Coordinates"`
	Distance            float64 `json:"Distance"`
}
