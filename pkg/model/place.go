package model

import "io"

// PlaceSummary is the integration-neutral shape of an external place result.
// Every place source maps its own wire format onto this before anything is
// persisted.
type PlaceSummary struct {
	PlaceID         string
	Name            string
	Address         string
	Latitude        float64
	Longitude       float64
	Rating          *float64
	PriceLevel      *int
	Website         *string
	PhoneNumber     *string
	PhotoReferences []string
	Types           []string
}

// PlacePhoto is a streamed photo resolved from an opaque photo reference.
// Callers own closing Data.
type PlacePhoto struct {
	ContentType string
	Data        io.ReadCloser
}
