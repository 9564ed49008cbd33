package calculator

import (
	"math"

	"github.com/paulmach/orb/geo"

	"volunteer-match/internal/models"
)

// WGS-84 ellipsoid
const (
	semiMajorAxis = 6378137.0
	flattening    = 1 / 298.257223563
	semiMinorAxis = semiMajorAxis * (1 - flattening)

	vincentyMaxIterations = 200
	vincentyTolerance     = 1e-12
)

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Vincenty computes the ellipsoidal distance between two points in meters
// using Vincenty's inverse formula. ok is false when the iteration does not
// converge, which happens for nearly antipodal points.
func Vincenty(p1, p2 models.GeoPoint) (meters float64, ok bool) {
	a, b, f := semiMajorAxis, semiMinorAxis, flattening

	L := toRadians(p2.Lon - p1.Lon)
	U1 := math.Atan((1 - f) * math.Tan(toRadians(p1.Lat)))
	U2 := math.Atan((1 - f) * math.Tan(toRadians(p2.Lat)))
	sinU1, cosU1 := math.Sincos(U1)
	sinU2, cosU2 := math.Sincos(U2)

	lambda := L
	var sinSigma, cosSigma, sigma, cosSqAlpha, cos2SigmaM float64
	converged := false

	for i := 0; i < vincentyMaxIterations; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)
		t1 := cosU2 * sinLambda
		t2 := cosU1*sinU2 - sinU1*cosU2*cosLambda
		sinSigma = math.Sqrt(t1*t1 + t2*t2)
		if sinSigma == 0 {
			return 0, true // coincident points
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		cos2SigmaM = 0 // equatorial line
		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		C := f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))
		prev := lambda
		lambda = L + (1-C)*f*sinAlpha*
			(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		if math.Abs(lambda-prev) < vincentyTolerance {
			converged = true
			break
		}
	}
	if !converged {
		return 0, false
	}

	uSq := cosSqAlpha * (a*a - b*b) / (b * b)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := B * sinSigma * (cos2SigmaM + B/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
		B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	return b * A * (sigma - deltaSigma), true
}

// DistanceKm returns the geodesic distance in kilometers. Points where
// Vincenty does not converge fall back to the spherical haversine distance.
func DistanceKm(from, to models.GeoPoint) float64 {
	if m, ok := Vincenty(from, to); ok {
		return m / 1000
	}
	return geo.DistanceHaversine(from.Point(), to.Point()) / 1000
}
