package constants

// Context keys
const (
	ContextTokenData = "token_data"
)

// Database defaults
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Redis key prefixes
const (
	RedisKeyAvailability = "availability:" // availability:{date}:{court_id}
)

// Cache TTLs (seconds)
const (
	AvailabilityCacheTTL = 6 * 60 * 60
)

// Asynq task types
const (
	TaskBookingConfirmed = "booking:confirmed"
	TaskBookingCancelled = "booking:cancelled"
)

// Booking statuses
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)
