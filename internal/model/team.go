package model

import "time"

// MemberStatus tells joined members apart from pending invitations.
type MemberStatus string

const (
	MemberActive  MemberStatus = "active"
	MemberInvited MemberStatus = "invited"
)

// Valid reports whether s is a known status.
func (s MemberStatus) Valid() bool {
	return s == MemberActive || s == MemberInvited
}

// TeamMember is one row of the team roster.
type TeamMember struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Role     Role         `json:"role"`
	Status   MemberStatus `json:"status"`
	JoinedAt time.Time    `json:"joinedAt"`
}
