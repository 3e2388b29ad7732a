package domain

// Registration and profile rules
const (
	MinUserAge        = 18
	MinPasswordLength = 6
	MaxNameLength     = 100
	MaxEmailLength    = 120
	MaxAddressLength  = 255
)

// Reservation rules
const (
	MaxTimeSlotLength = 20
	MaxContactLength  = 30
	MaxMessageLength  = 500
)

// Dashboard sizes
const (
	DefaultRecentReservations = 5
	UserUpcomingReservations  = 3
	UserRecommendedFacilities = 6
	OwnerRecentReservations   = 5
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// FacilityImageDir directory prefix of stored facility images
const FacilityImageDir = "canchas_uploads"

// AllowedImageExtensions extensions accepted for facility images
var AllowedImageExtensions = []string{"png", "jpg", "jpeg", "gif", "webp"}
