package models

import "errors"

var (
	// ErrLocationUnavailable marks a geolocation lookup that failed or
	// returned non-numeric coordinates.
	ErrLocationUnavailable = errors.New("location unavailable")

	// ErrWeatherLookup marks a forecast fetch that failed on transport,
	// returned a non-2xx status, or produced an unparseable body.
	ErrWeatherLookup = errors.New("weather lookup failed")
)
