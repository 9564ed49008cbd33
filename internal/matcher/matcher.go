package matcher

import (
	"errors"
	"fmt"

	"volunteer-match/internal/calculator"
	"volunteer-match/internal/models"
)

// MaxMatches is the number of closest volunteers returned per query.
const MaxMatches = 5

var (
	ErrMissingLocation = errors.New("location is required")
	ErrEmptyDataset    = errors.New("dataset not found or empty")
	ErrNoMatch         = errors.New("no volunteers matched")
)

type Store interface {
	AllRecords() []models.Volunteer
	IsEmpty() bool
}

type Matcher struct {
	store Store
}

func New(store Store) *Matcher {
	return &Matcher{store: store}
}

// Find runs the matching pipeline for q:
//
//	location check -> dataset check -> parse -> first pass -> rank -> second pass -> top 5
//
// Errors wrap ErrMissingLocation, ErrEmptyDataset, ErrNoMatch,
// calculator.ErrInvalidCoordinateFormat or calculator.ErrMalformedStoredLocation.
func (m *Matcher) Find(q models.Query) ([]models.MatchResult, error) {
	q = q.Trimmed()

		if m.store == nil || m.store.IsEmpty() {
		return nil, ErrEmptyDataset
	}
	if q.Location == "" {
		return nil, ErrMissingLocation
	}

	origin, err := calculator.ParseCoordinate(q.Location)
	if err != nil {
		return nil, err
	}

	candidates := Filter(m.store.AllRecords(), FirstPass(q))
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: date/language", ErrNoMatch)
	}

	ranked, err := calculator.Rank(candidates, origin)
	if err != nil {
		return nil, err
	}

	nearest := calculator.Nearest(FilterRanked(ranked, SecondPass(q)), MaxMatches)
	if len(nearest) == 0 {
		return nil, fmt.Errorf("%w: session/qualification", ErrNoMatch)
	}

	results := make([]models.MatchResult, len(nearest))
	for i, r := range nearest {
		results[i] = models.MatchResult{
			Name:                r.Volunteer.Name,
			LocationCoordinates: r.Volunteer.LocationCoordinates,
			Distance:            r.Distance,
		}
	}
	return results, nil
}
