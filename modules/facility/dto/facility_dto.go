package dto

import (
	"pickleball-api/modules/facility/entity"
)

// ===================== Request DTOs =====================

// SaveCourtRequest creates or updates a court record
type SaveCourtRequest struct {
	Name                string   `json:"name" validate:"required"`
	Description         string   `json:"description"`
	HourlyRate          int      `json:"hourly_rate" validate:"required,min=1"`
	Amenities           []string `json:"amenities"`
	ImageKey            string   `json:"image_key"`
	FacilityID          string   `json:"facility_id" validate:"required"`
	FacilityName        string   `json:"facility_name" validate:"required"`
	FacilityAddress     string   `json:"facility_address"`
	FacilityDescription string   `json:"facility_description"`
	FacilityImageKey    string   `json:"facility_image_key"`
}

// ===================== Response DTOs =====================

// CourtResponse for a single court
type CourtResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	HourlyRate  int      `json:"hourly_rate"`
	Amenities   []string `json:"amenities,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	FacilityID  string   `json:"facility_id"`
}

// FacilityResponse is the synthesized facility: a grouping of courts sharing
// a facility identifier, recomputed on every catalog load
type FacilityResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Address     string          `json:"address,omitempty"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	CourtCount  int             `json:"court_count"`
	Courts      []CourtResponse `json:"courts"`
}

// CatalogResponse wraps the catalog with the notice surfaced when the live
// catalog is empty and demo mode was not requested
type CatalogResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	Demo       bool               `json:"demo"`
	Notice     string             `json:"notice,omitempty"`
}

// ToCourtResponse maps a court entity, imageURL resolved by the caller
func ToCourtResponse(c *entity.Court, imageURL string) CourtResponse {
	return CourtResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		HourlyRate:  c.HourlyRate,
		Amenities:   c.Amenities,
		ImageURL:    imageURL,
		FacilityID:  c.FacilityID,
	}
}
