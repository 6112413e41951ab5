package models

// Location is a resolved observer position. Immutable once created.
type Location struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
}

// SatellitePosition is a single sub-satellite point as reported by the
// tracking API. Altitude is in kilometers, as received.
type SatellitePosition struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	AltitudeKm float64 `json:"altitude_km"`
}

// Pass is one predicted visible overhead pass. Field tags match the N2YO
// visualpasses payload; times are epoch seconds in UTC.
type Pass struct {
	StartUTC     int64   `json:"startUTC"`
	EndUTC       int64   `json:"endUTC"`
	StartAzimuth float64 `json:"startAz"`
	EndAzimuth   float64 `json:"endAz"`
	MaxElevation float64 `json:"maxEl"`
	Duration     int     `json:"duration"`
}
