package types

type Role string

const (
	RoleDonor     Role = "donor"
	RoleNGOAdmin  Role = "ngo-admin"
	RoleVolunteer Role = "volunteer"
)

func Roles() []Role {
	return []Role{RoleDonor, RoleNGOAdmin, RoleVolunteer}
}

func ParseRole(raw string) (Role, bool) {
	for _, r := range Roles() {
		if string(r) == raw {
			return r, true
		}
	}
	return "", false
}

// Identity is the simulated logged-in user. At most one identity is active
// per session; id is unix milliseconds at login/register.
type Identity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
