package user

type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) level() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleOwner:
		return 2
	case RoleUser:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r grants everything required grants (user < owner < admin).
func (r Role) AtLeast(required Role) bool {
	return r.level() >= required.level() && r.level() > 0
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Registration may only request user or owner.
func NewSelfServiceRole(s string) (Role, error) {
	if s == "" {
		return RoleUser, nil
	}
	role, err := NewRole(s)
	if err != nil {
		return "", err
	}
	if role == RoleAdmin {
		return "", ErrInvalidRole
	}
	return role, nil
}
