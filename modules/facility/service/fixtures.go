package service

import (
	"time"

	coreEntity "pickleball-api/core/entity"
	"pickleball-api/modules/facility/entity"

	"github.com/google/uuid"
)

// fixtureCourts is the built-in demo dataset served when the live catalog is
// empty and the caller requested demo mode
func fixtureCourts() []entity.Court {
	now := time.Now()
	mk := func(id, name, desc string, rate int, amenities []string, facID, facName, facAddr string) entity.Court {
		return entity.Court{
			Name:            name,
			Description:     desc,
			HourlyRate:      rate,
			Amenities:       amenities,
			FacilityID:      facID,
			FacilityName:    facName,
			FacilityAddress: facAddr,
			BaseEntity: coreEntity.BaseEntity{
				ID:        uuid.MustParse(id),
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
	}

	return []entity.Court{
		mk("0b54a9c2-1111-4a3e-9a10-000000000001", "Court 1", "Indoor court with cushioned surface", 25,
			[]string{"indoor", "lighting", "pro-net"}, "riverside", "Riverside Pickleball Club", "12 River Rd"),
		mk("0b54a9c2-1111-4a3e-9a10-000000000002", "Court 2", "Indoor court next to the lounge", 25,
			[]string{"indoor", "lighting"}, "riverside", "Riverside Pickleball Club", "12 River Rd"),
		mk("0b54a9c2-1111-4a3e-9a10-000000000003", "Center Court", "Tournament-grade outdoor court", 35,
			[]string{"outdoor", "stands", "lighting"}, "riverside", "Riverside Pickleball Club", "12 River Rd"),
		mk("0b54a9c2-2222-4a3e-9a10-000000000004", "Court A", "Covered outdoor court", 20,
			[]string{"covered", "lighting"}, "hillside", "Hillside Community Courts", "88 Summit Ave"),
		mk("0b54a9c2-2222-4a3e-9a10-000000000005", "Court B", "Open-air court with morning shade", 18,
			[]string{"outdoor"}, "hillside", "Hillside Community Courts", "88 Summit Ave"),
	}
}
