package calculator

import (
	"errors"
	"fmt"
	"sort"

	"volunteer-match/internal/models"
)

// ErrMalformedStoredLocation means a roster row carries a location that
// cannot be parsed. One bad row fails the whole ranking.
var ErrMalformedStoredLocation = errors.New("malformed stored location")

// Rank computes the distance from origin to every volunteer and sorts the
// result ascending. Equal distances keep their input order.
func Rank(volunteers []models.Volunteer, origin models.GeoPoint) ([]models.RankedVolunteer, error) {
	ranked := make([]models.RankedVolunteer, 0, len(volunteers))

	for _, v := range volunteers {
		loc, err := ParseCoordinate(v.LocationCoordinates)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d (%s): %v", ErrMalformedStoredLocation, v.RowIndex, v.Name, err)
		}
		ranked = append(ranked, models.RankedVolunteer{
			Volunteer: v,
			Distance:  DistanceKm(origin, loc),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})
	return ranked, nil
}

// Nearest returns at most k entries from the head of an already ranked list.
func Nearest(ranked []models.RankedVolunteer, k int) []models.RankedVolunteer {
	if k < 0 {
		k = 0
	}
	if len(ranked) > k {
		return ranked[:k]
	}
	return ranked
}
