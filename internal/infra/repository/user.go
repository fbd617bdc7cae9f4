package repository

import (
	"context"
	"time"

	"parkspot/internal/domain/user"
	"parkspot/internal/infra"
	"parkspot/internal/infra/repository/converter"
	sqlc "parkspot/internal/infra/sqlc/generated"
	"parkspot/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	UpdateLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLastLoginParams) error
	UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	row, err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return row.ID, nil
}

func (r *UserRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.FindUserByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct user", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error {
	err := r.queries.UpdateLastLogin(ctx, tx, sqlc.UpdateLastLoginParams{
		ID:        userID,
		LastLogin: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	params := sqlc.UpdateUserProfileParams{
		ID:        u.ID(),
		Name:      u.Name().Value(),
		UpdatedAt: pgconv.TimeToPgtype(u.UpdatedAt()),
	}
	if !u.Phone().IsZero() {
		params.Phone = pgconv.StringToPgtype(u.Phone().Value())
	}
	n, err := r.queries.UpdateUserProfile(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
