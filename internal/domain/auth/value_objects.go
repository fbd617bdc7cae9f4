package auth

import (
	"parkspot/internal/domain/user"
	"parkspot/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrInactiveUser       = errs.New("user account is inactive")
	ErrEmailTaken         = errs.New("email is already registered")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration is a validated sign-up request.
type Registration struct {
	Credentials
	name  user.Name
	phone user.Phone
	role  user.Role
}

func NewRegistration(emailStr, passwordStr, nameStr, phoneStr, roleStr string) (Registration, error) {
	creds, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}
	name, err := user.NewName(nameStr)
	if err != nil {
		return Registration{}, err
	}
	phone, err := user.NewPhone(phoneStr)
	if err != nil {
		return Registration{}, err
	}
	role, err := user.NewSelfServiceRole(roleStr)
	if err != nil {
		return Registration{}, err
	}
	return Registration{Credentials: creds, name: name, phone: phone, role: role}, nil
}

func (r Registration) Name() user.Name   { return r.name }
func (r Registration) Phone() user.Phone { return r.phone }
func (r Registration) Role() user.Role   { return r.role }
