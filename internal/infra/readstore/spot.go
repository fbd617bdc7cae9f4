package readstore

import (
	"context"

	"parkspot/internal/infra"
	sqlc "parkspot/internal/infra/sqlc/generated"
	"parkspot/internal/pkg/pgconv"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

type SpotReadQueries interface {
	GetSpotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Spots, error)
	ListSpotsByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.Spots, error)
	SearchSpotsNear(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchSpotsNearParams) ([]sqlc.SearchSpotsNearRow, error)
}

type SpotReadStore struct {
	queries SpotReadQueries
	db      sqlc.DBTX
}

func NewSpotReadStore(queries SpotReadQueries, db sqlc.DBTX) *SpotReadStore {
	return &SpotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SpotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SpotView, error) {
	row, err := r.queries.GetSpotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get spot by id", err)
	}
	return toSpotView(row), nil
}

func (r *SpotReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.SpotView, error) {
	rows, err := r.queries.ListSpotsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spots by owner", err)
	}
	result := make([]*queries.SpotView, len(rows))
	for i, row := range rows {
		result[i] = toSpotView(row)
	}
	return result, nil
}

func (r *SpotReadStore) SearchNear(ctx context.Context, lat, lng, radiusKm float64, limit int32) ([]*queries.SpotSearchResult, error) {
	rows, err := r.queries.SearchSpotsNear(ctx, r.db, sqlc.SearchSpotsNearParams{
		Lat:        lat,
		Lng:        lng,
		RadiusKm:   radiusKm,
		MaxResults: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search spots", err)
	}
	result := make([]*queries.SpotSearchResult, len(rows))
	for i, row := range rows {
		result[i] = &queries.SpotSearchResult{
			SpotView: *toSpotView(sqlc.Spots{
				ID:             row.ID,
				OwnerID:        row.OwnerID,
				Title:          row.Title,
				Address:        row.Address,
				Lat:            row.Lat,
				Lng:            row.Lng,
				HourlyRate:     row.HourlyRate,
				OpenTime:       row.OpenTime,
				CloseTime:      row.CloseTime,
				AvailableDays:  row.AvailableDays,
				TimeZone:       row.TimeZone,
				TotalSlots:     row.TotalSlots,
				AvailableSlots: row.AvailableSlots,
				CreatedAt:      row.CreatedAt,
				UpdatedAt:      row.UpdatedAt,
			}),
			DistanceKm: row.DistanceKm,
		}
	}
	return result, nil
}

func toSpotView(row sqlc.Spots) *queries.SpotView {
	return &queries.SpotView{
		ID:             row.ID,
		OwnerID:        row.OwnerID,
		Title:          row.Title,
		Address:        row.Address,
		Lat:            row.Lat,
		Lng:            row.Lng,
		HourlyRate:     row.HourlyRate,
		OpenTime:       row.OpenTime,
		CloseTime:      row.CloseTime,
		AvailableDays:  row.AvailableDays,
		TimeZone:       row.TimeZone,
		TotalSlots:     row.TotalSlots,
		AvailableSlots: row.AvailableSlots,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
