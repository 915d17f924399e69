package dto

type SlotCount struct {
	Slot     string `json:"slot"`
	Bookings int    `json:"bookings"`
}

type SummaryRequest struct {
	From       string `query:"from"`
	To         string `query:"to"`
	FacilityID string `query:"facility_id"`
}

type SummaryResponse struct {
	From              string      `json:"from"`
	To                string      `json:"to"`
	TotalBookings     int         `json:"total_bookings"`
	CancelledBookings int         `json:"cancelled_bookings"`
	CancellationRate  float64     `json:"cancellation_rate"`
	Revenue           int         `json:"revenue"`
	BookedHours       int         `json:"booked_hours"`
	OccupancyRate     float64     `json:"occupancy_rate"`
	SlotBreakdown     []SlotCount `json:"slot_breakdown"`
}
