package commands

import (
	"context"
	"log/slog"

	"parkspot/internal/domain/spot"
	"parkspot/internal/domain/user"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/patch"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSpotNotFound          = errs.New("spot not found")
	ErrSpotNotOwned          = errs.New("spot not owned by user")
	ErrSpotHasActiveBookings = errs.New("spot has active bookings")
)

type CreateSpotInput struct {
	Title         string
	Address       string
	Lat           float64
	Lng           float64
	HourlyRate    decimal.Decimal
	OpenTime      string
	CloseTime     string
	AvailableDays []string
	TimeZone      string
	TotalSlots    int
}

// UpdateSpotInput is a partial update; nil fields keep their current value.
type UpdateSpotInput struct {
	Title         *string
	Address       *string
	Lat           *float64
	Lng           *float64
	HourlyRate    *decimal.Decimal
	OpenTime      *string
	CloseTime     *string
	AvailableDays []string
	TimeZone      *string
	TotalSlots    *int
}

type SpotCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateSpotInput) (uuid.UUID, error)
	Update(ctx context.Context, actorID uuid.UUID, actorRole string, spotID uuid.UUID, in UpdateSpotInput) error
	Delete(ctx context.Context, actorID uuid.UUID, actorRole string, spotID uuid.UUID) error
}

type spotCommandsImpl struct {
	uow             shared.UnitOfWork
	clock           clock.Clock
	defaultTimeZone string
}

func NewSpotCommands(uow shared.UnitOfWork, clk clock.Clock, defaultTimeZone string) SpotCommands {
	return &spotCommandsImpl{uow: uow, clock: clk, defaultTimeZone: defaultTimeZone}
}

func (uc *spotCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, in CreateSpotInput) (uuid.UUID, error) {
	tz := in.TimeZone
	if tz == "" {
		tz = uc.defaultTimeZone
	}
	details, err := spot.BuildDetails(spot.RawDetails{
		Title:         in.Title,
		Address:       in.Address,
		Lat:           in.Lat,
		Lng:           in.Lng,
		HourlyRate:    in.HourlyRate,
		OpenTime:      in.OpenTime,
		CloseTime:     in.CloseTime,
		AvailableDays: in.AvailableDays,
		TimeZone:      tz,
	})
	if err != nil {
		return uuid.Nil, err
	}

	s, err := spot.NewSpot(ownerID, details, in.TotalSlots, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Spots().Create(ctx, tx.DB(), s)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("スポットを登録しました", "spot_id", s.ID(), "owner_id", ownerID)
	return s.ID(), nil
}

func (uc *spotCommandsImpl) Update(ctx context.Context, actorID uuid.UUID, actorRole string, spotID uuid.UUID, in UpdateSpotInput) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Spots().FindByIDForUpdate(ctx, tx.DB(), spotID)
		if err != nil {
			return err
		}
		if !canManageSpot(s, actorID, actorRole) {
			return ErrSpotNotOwned
		}

		cur := s.RawDetails()
		details, err := spot.BuildDetails(spot.RawDetails{
			Title:         patch.Coalesce(in.Title, cur.Title),
			Address:       patch.Coalesce(in.Address, cur.Address),
			Lat:           patch.Coalesce(in.Lat, cur.Lat),
			Lng:           patch.Coalesce(in.Lng, cur.Lng),
			HourlyRate:    patch.Coalesce(in.HourlyRate, cur.HourlyRate),
			OpenTime:      patch.Coalesce(in.OpenTime, cur.OpenTime),
			CloseTime:     patch.Coalesce(in.CloseTime, cur.CloseTime),
			AvailableDays: patch.CoalesceSlice(in.AvailableDays, cur.AvailableDays),
			TimeZone:      patch.Coalesce(in.TimeZone, cur.TimeZone),
		})
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		s.UpdateDetails(details, now)
		if in.TotalSlots != nil {
			if err := s.ChangeCapacity(*in.TotalSlots, now); err != nil {
				return err
			}
		}
		return tx.Spots().Update(ctx, tx.DB(), s)
	})
	return mapSpotErr(err)
}

func (uc *spotCommandsImpl) Delete(ctx context.Context, actorID uuid.UUID, actorRole string, spotID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Spots().FindByIDForUpdate(ctx, tx.DB(), spotID)
		if err != nil {
			return err
		}
		if !canManageSpot(s, actorID, actorRole) {
			return ErrSpotNotOwned
		}
		active, err := tx.Spots().CountActiveBookings(ctx, tx.DB(), spotID)
		if err != nil {
			return err
		}
		if active > 0 {
			return ErrSpotHasActiveBookings
		}
		return tx.Spots().Delete(ctx, tx.DB(), spotID)
	})
	if err == nil {
		slog.Info("スポットを削除しました", "spot_id", spotID, "actor_id", actorID)
	}
	return mapSpotErr(err)
}

func canManageSpot(s *spot.Spot, actorID uuid.UUID, actorRole string) bool {
	return s.IsOwnedBy(actorID) || user.Role(actorRole) == user.RoleAdmin
}

func mapSpotErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrSpotNotFound
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrSpotHasActiveBookings
	}
	return err
}
