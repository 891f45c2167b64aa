package chart

import "errors"

var (
	// ErrUnsupportedFormat is returned by Load for an unknown file extension.
	ErrUnsupportedFormat = errors.New("chart: unsupported file format")

	// ErrInvalidLongitude is returned for a NaN or infinite longitude.
	ErrInvalidLongitude = errors.New("chart: longitude must be finite")

	// ErrInvalidHouses is returned when a chart has neither zero nor twelve cusps.
	ErrInvalidHouses = errors.New("chart: house list must be empty or hold 12 cusps")

	// ErrMissingID is returned for a body without an identifier.
	ErrMissingID = errors.New("chart: body id is required")

	// ErrNoEngine is returned by Calculate when called with a nil Engine.
	ErrNoEngine = errors.New("chart: no ephemeris engine")
)
