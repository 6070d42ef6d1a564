package models

// Location is a point on the map. Address is optional.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// RideRequest is the body of POST /rides/request.
type RideRequest struct {
	Origin      Location `json:"origin"`
	Destination Location `json:"destination"`
}

// Ride is the ride record returned on request.
type Ride struct {
	RideID            string  `json:"ride_id"`
	Status            string  `json:"status"`
	EstimatedDuration int     `json:"estimated_duration"`
	EstimatedCost     float64 `json:"estimated_cost"`
}

// RideStatus is returned by GET /rides/{id}/status.
type RideStatus struct {
	RideID       string `json:"ride_id"`
	Status       string `json:"status"`
	DriverID     string `json:"driver_id,omitempty"`
	TokensEarned int64  `json:"tokens_earned,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}
