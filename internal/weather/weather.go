package weather

import (
	"context"
)

// Snapshot is the normalized result of a single current-conditions fetch.
// It is either fully populated from one provider response or absent;
// callers never see a partially-filled snapshot.
type Snapshot struct {
	TempF      int    `json:"tempF"`
	FeelsLikeF int    `json:"feelsLikeF"`
	Humidity   int    `json:"humidityPercent"`
	WindMPH    int    `json:"windMph"`
	Condition  string `json:"condition"`
}

// Provider abstracts a current-conditions data source. The query is either
// a "lat,lon" pair or a "City,ST"-shaped string.
type Provider interface {
	Name() string
	Current(ctx context.Context, query string) (Snapshot, error)
}
