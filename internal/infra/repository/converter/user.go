package converter

import (
	"parkspot/internal/domain/user"
	sqlc "parkspot/internal/infra/sqlc/generated"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	params := sqlc.CreateUserParams{
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Name:         u.Name().Value(),
		Role:         u.Role().String(),
	}
	if !u.Phone().IsZero() {
		params.Phone = pgconv.StringToPgtype(u.Phone().Value())
	}
	return params
}

func UserFromRow(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", row.ID)
	}
	name, err := user.NewName(row.Name)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", row.ID)
	}
	phone, err := user.NewPhone(row.Phone.String)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", row.ID)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", row.ID)
	}
	return user.ReconstructUser(
		row.ID,
		email,
		row.PasswordHash,
		name,
		phone,
		role,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
