package model

// TeamMember is a member of exactly one Team.
type TeamMember struct {
	Name string
}

// Team is built by team registration. Members keep registration order.
type Team struct {
	Name       string
	University string
	Captain    string
	Members    []TeamMember
}

// AddMember appends a member to the team.
func (t *Team) AddMember(name string) {
	t.Members = append(t.Members, TeamMember{Name: name})
}

// MemberNames returns member names in registration order.
func (t Team) MemberNames() []string {
	names := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		names = append(names, m.Name)
	}
	return names
}
