package commands

import (
	"context"

	"parkspot/internal/domain/user"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/patch"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateProfileInput struct {
	Name  *string
	Phone *string
}

type UserCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) error
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk}
}

func (uc *userCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, tx.DB(), userID)
		if err != nil {
			return err
		}
		name, err := user.NewName(patch.Coalesce(in.Name, u.Name().Value()))
		if err != nil {
			return err
		}
		phone, err := user.NewPhone(patch.Coalesce(in.Phone, u.Phone().Value()))
		if err != nil {
			return err
		}
		u.UpdateProfile(name, phone, uc.clock.Now())
		return tx.Users().UpdateProfile(ctx, tx.DB(), u)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrUserNotFound
	}
	return err
}
