package model

// Role labels an actor for display. Roles carry no permissions.
type Role string

const (
	RoleTeamCaptain         Role = "Team Captain"
	RoleProblemSetter       Role = "Problem Setter"
	RoleTeamMember          Role = "Team Member"
	RoleSystemAdministrator Role = "System Administrator"
)

// Actor is a named participant in one of the workflows.
type Actor struct {
	Role     Role
	Username string
}

// NewActor builds an Actor for the given role.
func NewActor(role Role, username string) Actor {
	return Actor{Role: role, Username: username}
}

func (a Actor) String() string {
	return string(a.Role) + " " + a.Username
}
