package models

import "fmt"

// Coordinates is a WGS 84 latitude/longitude pair produced by the
// geolocation lookup and consumed by the weather fetch. Never persisted.
type Coordinates struct {
	Lat float64 `json:"lat" example:"40.7128"`
	Lon float64 `json:"lon" example:"-74.006"`
}

// PathParam renders the pair the way the forecast API expects it in the
// request path.
func (c Coordinates) PathParam() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lon)
}
