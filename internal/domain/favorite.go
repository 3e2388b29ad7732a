package domain

import "time"

// Favorite is a user's bookmark of a facility
type Favorite struct {
	ID         int64
	UserID     int64
	FacilityID int64
	AddedAt    time.Time

	Facility *Facility
}
