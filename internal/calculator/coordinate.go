package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"volunteer-match/internal/models"
)

var ErrInvalidCoordinateFormat = errors.New("invalid coordinate format")

func parseCoord(val string) (float64, error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, fmt.Errorf("empty")
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %q", val)
	}
	return f, nil
}

// ParseCoordinate parses a "lat,lon" string. Ranges are not checked.
func ParseCoordinate(text string) (models.GeoPoint, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return models.GeoPoint{}, fmt.Errorf("%w: %q: want 2 comma separated values, got %d", ErrInvalidCoordinateFormat, text, len(parts))
	}

	lat, err1 := parseCoord(parts[0])
	lon, err2 := parseCoord(parts[1])
	if err := errors.Join(err1, err2); err != nil {
		return models.GeoPoint{}, fmt.Errorf("%w: %q: %v", ErrInvalidCoordinateFormat, text, err)
	}

	return models.GeoPoint{Lat: lat, Lon: lon}, nil
}
