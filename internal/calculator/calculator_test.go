package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteer-match/internal/models"
)

func volunteer(row int, name, loc string) models.Volunteer {
	return models.Volunteer{RowIndex: row, Name: name, LocationCoordinates: loc}
}

func TestRank(t *testing.T) {
	origin := models.GeoPoint{Lat: 40.0, Lon: -74.0}
	volunteers := []models.Volunteer{
		volunteer(2, "far", "41.0,-74.0"),
		volunteer(3, "near", "40.01,-74.0"),
		volunteer(4, "middle", "40.5,-74.0"),
	}

	ranked, err := Rank(volunteers, origin)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	names := []string{ranked[0].Volunteer.Name, ranked[1].Volunteer.Name, ranked[2].Volunteer.Name}
	assert.Equal(t, []string{"near", "middle", "far"}, names)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].Distance, ranked[i].Distance)
	}
}

func TestRankIsStable(t *testing.T) {
	origin := models.GeoPoint{Lat: 10, Lon: 10}
	volunteers := []models.Volunteer{
		volunteer(2, "a", "10.2,10"),
		volunteer(3, "b", "10.1,10"),
		volunteer(4, "c", "10.2,10"),
		volunteer(5, "d", "10.1,10"),
		volunteer(6, "e", " 10.2 , 10 "),
	}

	ranked, err := Rank(volunteers, origin)
	require.NoError(t, err)

	var names []string
	for _, r := range ranked {
		names = append(names, r.Volunteer.Name)
	}
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, names)
}

func TestRankMalformedStoredLocation(t *testing.T) {
	volunteers := []models.Volunteer{
		volunteer(2, "ok", "40,-74"),
		volunteer(3, "broken", "somewhere"),
	}

	ranked, err := Rank(volunteers, models.GeoPoint{Lat: 40, Lon: -74})
	assert.Nil(t, ranked)
	assert.ErrorIs(t, err, ErrMalformedStoredLocation)
	assert.Contains(t, err.Error(), "row 3")
}

func TestRankEmpty(t *testing.T) {
	ranked, err := Rank(nil, models.GeoPoint{})
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestNearest(t *testing.T) {
	ranked := make([]models.RankedVolunteer, 7)
	for i := range ranked {
		ranked[i].Distance = float64(i)
	}

	assert.Len(t, Nearest(ranked, 5), 5)
	assert.Equal(t, 4.0, Nearest(ranked, 5)[4].Distance)
	assert.Len(t, Nearest(ranked[:3], 5), 3)
	assert.Empty(t, Nearest(ranked, 0))
	assert.Empty(t, Nearest(ranked, -1))
	assert.Empty(t, Nearest(nil, 5))
}
