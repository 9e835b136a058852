// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.17
//

package units

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Coordinate is a point on a spherical Earth of radius EarthRadius.
type Coordinate struct {
	lat Latitude
	lon Longitude
}

func NewCoordinate(lat Latitude, lon Longitude) Coordinate {
	return Coordinate{lat: lat, lon: lon}
}

// CoordinateFromDegrees builds a Coordinate from decimal degrees, normalizing both angles.
func CoordinateFromDegrees(lat, lon float64) Coordinate {
	return NewCoordinate(LatitudeFromDegrees(lat), LongitudeFromDegrees(lon))
}

func (c Coordinate) Latitude() Latitude {
	return c.lat
}

func (c Coordinate) Longitude() Longitude {
	return c.lon
}

// Distance returns the great-circle distance to o by the haversine formula.
func (c Coordinate) Distance(o Coordinate) Length {
	dLat := Sub(c.lat, o.lat)
	dLon := Sub(c.lon, o.lon)

	// cos(lat1)*cos(lat2) is grouped first so that the result is symmetric in c and o
	a := sq(math.Sin(dLat.Radians()/2)) + sq(math.Sin(dLon.Radians()/2))*(math.Cos(c.lat.Radians())*math.Cos(o.lat.Radians()))

	// rounding can leave a just outside [0, 1] near antipodes
	a = math.Min(1, math.Max(0, a))
	return Mul(EarthRadius(), 2*math.Atan2(math.Sqrt(a), math.Sqrt(1-a)))
}

// BearingTo returns the initial bearing of the great circle from c to o,
// clockwise from north, in (-π, π].
func (c Coordinate) BearingTo(o Coordinate) Angle {
	lat1, lat2 := c.lat.Radians(), o.lat.Radians()
	dLon := o.lon.Radians() - c.lon.Radians()
	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	return NewAngle(math.Atan2(y, x))
}

// Position returns the earth-centered, earth-fixed position in meters on the sphere.
func (c Coordinate) Position() r3.Vec {
	r := EarthRadius().Meters()
	lat, lon := c.lat.Radians(), c.lon.Radians()
	return r3.Vec{
		X: r * math.Cos(lat) * math.Cos(lon),
		Y: r * math.Cos(lat) * math.Sin(lon),
		Z: r * math.Sin(lat),
	}
}

// ChordDistance returns the straight-line distance through the sphere, never
// more than Distance.
func (c Coordinate) ChordDistance(o Coordinate) Length {
	return NewLength(r3.Norm(r3.Sub(c.Position(), o.Position())))
}

func (c Coordinate) String() string {
	return c.lat.String() + " " + c.lon.String()
}
