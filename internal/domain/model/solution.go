package model

// Solution is a team member's answer to a problem. It is not judged or stored.
type Solution struct {
	Problem  string
	Code     string
	Comments string
	Author   string
}

// AccessPolicy is the outcome of access control configuration.
type AccessPolicy struct {
	RoleCount     int
	Administrator string
}
