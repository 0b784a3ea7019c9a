package model

import (
	"database/sql/driver"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
)

// SRIDWGS84 is the spatial reference of every stored point.
const SRIDWGS84 = 4326

// GeoPoint maps an orb.Point (lng, lat) to a PostGIS geometry(Point,4326) column.
type GeoPoint orb.Point

// Scan implements sql.Scanner. A NULL column scans to the zero point.
func (p *GeoPoint) Scan(src any) error {
	if src == nil {
		*p = GeoPoint{}

		return nil
	}

	var point orb.Point
	if err := ewkb.Scanner(&point).Scan(src); err != nil {
		return err
	}
	*p = GeoPoint(point)

	return nil
}

// Value implements driver.Valuer.
func (p GeoPoint) Value() (driver.Value, error) {
	return ewkb.Value(orb.Point(p), SRIDWGS84).Value()
}

// GormDataType declares the column type used by migrations.
func (GeoPoint) GormDataType() string {
	return "geometry(Point,4326)"
}
