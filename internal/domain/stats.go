package domain

// PlatformStats aggregated counters for the admin dashboard
type PlatformStats struct {
	TotalUsers        int64
	TotalOwners       int64
	TotalFacilities   int64
	TotalReservations int64
}

// UserStats counters for a user's dashboard
type UserStats struct {
	TotalReservations    int64
	UpcomingReservations int64
	Favorites            int64
}

// OwnerStats counters for an owner's dashboard
type OwnerStats struct {
	Facilities   int64
	Reservations int64
}
