package entity

import (
	"pickleball-api/core/entity"

	"github.com/lib/pq"
)

// User is the profile record owned by the external identity service. The
// booking engine touches exactly one field: BookingIDs, appended on commit.
type User struct {
	Email      string         `db:"email" json:"email"`
	FullName   string         `db:"full_name" json:"full_name"`
	Phone      string         `db:"phone" json:"phone"`
	BookingIDs pq.StringArray `db:"booking_ids" json:"booking_ids"`
	entity.BaseEntity
}
