package converter

import (
	"parkspot/internal/domain/spot"
	sqlc "parkspot/internal/infra/sqlc/generated"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/pgconv"
)

func SpotToCreateParams(s *spot.Spot) sqlc.CreateSpotParams {
	sch := s.Schedule()
	return sqlc.CreateSpotParams{
		ID:             s.ID(),
		OwnerID:        s.OwnerID(),
		Title:          s.Title().String(),
		Address:        s.Address().String(),
		Lat:            s.Coordinates().Lat(),
		Lng:            s.Coordinates().Lng(),
		HourlyRate:     s.HourlyRate().Decimal(),
		OpenTime:       sch.Open().String(),
		CloseTime:      sch.Close().String(),
		AvailableDays:  sch.Days().Names(),
		TimeZone:       sch.Location().String(),
		TotalSlots:     pgconv.IntToInt32(s.TotalSlots()),
		AvailableSlots: pgconv.IntToInt32(s.AvailableSlots()),
		CreatedAt:      pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func SpotToUpdateParams(s *spot.Spot) sqlc.UpdateSpotParams {
	sch := s.Schedule()
	return sqlc.UpdateSpotParams{
		ID:             s.ID(),
		Title:          s.Title().String(),
		Address:        s.Address().String(),
		Lat:            s.Coordinates().Lat(),
		Lng:            s.Coordinates().Lng(),
		HourlyRate:     s.HourlyRate().Decimal(),
		OpenTime:       sch.Open().String(),
		CloseTime:      sch.Close().String(),
		AvailableDays:  sch.Days().Names(),
		TimeZone:       sch.Location().String(),
		TotalSlots:     pgconv.IntToInt32(s.TotalSlots()),
		AvailableSlots: pgconv.IntToInt32(s.AvailableSlots()),
		UpdatedAt:      pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

// RawDetailsFromRow is also used by the search read path to rebuild schedules.
func RawDetailsFromRow(row sqlc.Spots) spot.RawDetails {
	return spot.RawDetails{
		Title:         row.Title,
		Address:       row.Address,
		Lat:           row.Lat,
		Lng:           row.Lng,
		HourlyRate:    row.HourlyRate,
		OpenTime:      row.OpenTime,
		CloseTime:     row.CloseTime,
		AvailableDays: row.AvailableDays,
		TimeZone:      row.TimeZone,
	}
}

func SpotFromRow(row sqlc.Spots) (*spot.Spot, error) {
	details, err := spot.BuildDetails(RawDetailsFromRow(row))
	if err != nil {
		return nil, errs.Wrapf(err, "stored spot %s", row.ID)
	}
	return spot.ReconstructSpot(
		row.ID, row.OwnerID,
		details,
		int(row.TotalSlots), int(row.AvailableSlots),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
