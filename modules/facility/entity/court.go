package entity

import (
	"pickleball-api/core/entity"

	"github.com/lib/pq"
)

// Court is the authoritative stored record. Facilities are not stored
// standalone: each court row carries denormalized facility columns, and the
// catalog groups courts on facility_id to synthesize facility records.
type Court struct {
	Name        string         `db:"name" json:"name"`
	Description string         `db:"description" json:"description"`
	HourlyRate  int            `db:"hourly_rate" json:"hourly_rate"`
	Amenities   pq.StringArray `db:"amenities" json:"amenities"`
	ImageKey    string         `db:"image_key" json:"image_key"`

	FacilityID          string `db:"facility_id" json:"facility_id"`
	FacilityName        string `db:"facility_name" json:"facility_name"`
	FacilityAddress     string `db:"facility_address" json:"facility_address"`
	FacilityDescription string `db:"facility_description" json:"facility_description"`
	FacilityImageKey    string `db:"facility_image_key" json:"facility_image_key"`

	entity.BaseEntity
}
